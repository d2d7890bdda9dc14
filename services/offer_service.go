package services

import (
	"github.com/dinehub/franchise-admin/models"
	"gorm.io/gorm"
)

// OfferStats is the per-offer slice of the analytics RPC.
type OfferStats struct {
	OfferID        uint    `json:"offerId"`
	Code           string  `json:"code"`
	Sent           int     `json:"sent"`
	Viewed         int     `json:"viewed"`
	Redeemed       int     `json:"redeemed"`
	RedemptionRate float64 `json:"redemptionRate"`
}

// OfferSummary aggregates over all requested offers.
type OfferSummary struct {
	TotalSent         int     `json:"totalSent"`
	TotalViewed       int     `json:"totalViewed"`
	TotalRedeemed     int     `json:"totalRedeemed"`
	AvgRedemptionRate float64 `json:"avgRedemptionRate"`
}

type OfferService struct {
	db *gorm.DB
}

func NewOfferService(db *gorm.DB) *OfferService {
	return &OfferService{db: db}
}

// Analytics returns per-offer delivery counters plus an aggregate summary
// for the requested offer ids. Unknown ids are skipped, not errors.
func (os *OfferService) Analytics(offerIDs []uint) ([]OfferStats, OfferSummary, error) {
	var offers []models.Offer
	if err := os.db.Where("id IN ?", offerIDs).Find(&offers).Error; err != nil {
		return nil, OfferSummary{}, err
	}

	stats := make([]OfferStats, 0, len(offers))
	var summary OfferSummary
	var rateSum float64

	for _, o := range offers {
		rate := 0.0
		if o.SentCount > 0 {
			rate = float64(o.RedeemedCount) / float64(o.SentCount) * 100
		}
		stats = append(stats, OfferStats{
			OfferID:        o.ID,
			Code:           o.Code,
			Sent:           o.SentCount,
			Viewed:         o.ViewedCount,
			Redeemed:       o.RedeemedCount,
			RedemptionRate: rate,
		})
		summary.TotalSent += o.SentCount
		summary.TotalViewed += o.ViewedCount
		summary.TotalRedeemed += o.RedeemedCount
		rateSum += rate
	}

	if len(stats) > 0 {
		summary.AvgRedemptionRate = rateSum / float64(len(stats))
	}
	return stats, summary, nil
}
