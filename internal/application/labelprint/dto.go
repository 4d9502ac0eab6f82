package labelprint

import "github.com/packetery/backend/internal/domain/settings"

// SelectionRequest lists the orders picked in the order list bulk action
type SelectionRequest struct {
	OrderIDs []int64 `json:"order_ids" binding:"required,min=1,max=500,dive,min=1"`
}

// PrintRequest starts printing the stored selection
type PrintRequest struct {
	Offset        int  `json:"offset" binding:"gte=0"`
	CarrierLabels bool `json:"carrier_labels"`
}

// OffsetChoicesResponse describes the offset form. No choices means no form.
type OffsetChoicesResponse struct {
	Format    settings.LabelFormat    `json:"format"`
	MaxOffset int                     `json:"max_offset"`
	Choices   []settings.OffsetChoice `json:"choices"`
}

// LabelDocument is the printed PDF
type LabelDocument struct {
	FileName    string
	PDF         []byte
	PacketCount int
	ArchiveURL  string
}
