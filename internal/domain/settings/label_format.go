package settings

import (
	"fmt"
	"strings"
)

// LabelFormat is the paper layout Packeta renders labels on
type LabelFormat string

const (
	FormatA6OnA4     LabelFormat = "A6 on A4"
	FormatA6OnA6     LabelFormat = "A6 on A6"
	FormatA7OnA7     LabelFormat = "A7 on A7"
	FormatA7OnA4     LabelFormat = "A7 on A4"
	Format105x35OnA4 LabelFormat = "105x35mm on A4"
	FormatA8OnA8     LabelFormat = "A8 on A8"
)

// DefaultLabelFormat is used for both label kinds until the admin picks one
const DefaultLabelFormat = FormatA6OnA4

// FormatInfo describes a label format
type FormatInfo struct {
	Format    LabelFormat `json:"format"`
	MaxOffset int         `json:"max_offset"`
}

var packetaFormats = []FormatInfo{
	{FormatA6OnA4, 3},
	{FormatA6OnA6, 0},
	{FormatA7OnA7, 0},
	{FormatA7OnA4, 7},
	{Format105x35OnA4, 15},
	{FormatA8OnA8, 0},
}

var carrierFormats = []FormatInfo{
	{FormatA6OnA4, 3},
	{FormatA6OnA6, 0},
}

// PacketaLabelFormats lists formats accepted for Packeta labels
func PacketaLabelFormats() []FormatInfo {
	return append([]FormatInfo(nil), packetaFormats...)
}

// CarrierLabelFormats lists formats accepted for external carrier labels
func CarrierLabelFormats() []FormatInfo {
	return append([]FormatInfo(nil), carrierFormats...)
}

// IsPacketaFormat reports whether f can be used for Packeta labels
func (f LabelFormat) IsPacketaFormat() bool {
	return lookup(packetaFormats, f) != nil
}

// IsCarrierFormat reports whether f can be used for carrier labels
func (f LabelFormat) IsCarrierFormat() bool {
	return lookup(carrierFormats, f) != nil
}

// MaxOffset is how many label fields can be skipped on the first sheet
func (f LabelFormat) MaxOffset() int {
	if info := lookup(packetaFormats, f); info != nil {
		return info.MaxOffset
	}
	return 0
}

// FileName builds the attachment name used when streaming labels.
// "A6 on A4" becomes packeta_labels_a6_on_a4.pdf.
func (f LabelFormat) FileName() string {
	return "packeta_labels_" + strings.ReplaceAll(strings.ToLower(string(f)), " ", "_") + ".pdf"
}

func (f LabelFormat) String() string {
	return string(f)
}

func lookup(formats []FormatInfo, f LabelFormat) *FormatInfo {
	for i := range formats {
		if formats[i].Format == f {
			return &formats[i]
		}
	}
	return nil
}

// OffsetChoice is one option of the "skip label fields" form
type OffsetChoice struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// OffsetChoices returns 0..maxOffset. An empty result means no offset form is needed.
func OffsetChoices(maxOffset int) []OffsetChoice {
	if maxOffset <= 0 {
		return nil
	}
	choices := make([]OffsetChoice, 0, maxOffset+1)
	choices = append(choices, OffsetChoice{Value: 0, Label: "Do not skip any field"})
	for i := 1; i <= maxOffset; i++ {
		choices = append(choices, OffsetChoice{Value: i, Label: fmt.Sprintf("Skip %d fields", i)})
	}
	return choices
}
