package packeta

import (
	"bytes"
	"encoding/xml"
)

const (
	soapEnvNS = "http://schemas.xmlsoap.org/soap/envelope/"
	packetaNS = "http://www.zasilkovna.cz/api/soap.wsdl"
)

// ---------------------------------------------------------------------------
// Request envelope
// ---------------------------------------------------------------------------

type requestEnvelope struct {
	XMLName xml.Name    `xml:"soapenv:Envelope"`
	SoapEnv string      `xml:"xmlns:soapenv,attr"`
	NS      string      `xml:"xmlns:ns,attr"`
	Body    requestBody `xml:"soapenv:Body"`
}

type requestBody struct {
	Content any
}

func newEnvelope(content any) requestEnvelope {
	return requestEnvelope{
		SoapEnv: soapEnvNS,
		NS:      packetaNS,
		Body:    requestBody{Content: content},
	}
}

type createPacketRequest struct {
	XMLName     xml.Name         `xml:"ns:createPacket"`
	APIPassword string           `xml:"apiPassword"`
	Attributes  packetAttributes `xml:"attributes"`
}

type packetAttributes struct {
	Number             string      `xml:"number,omitempty"`
	Name               string      `xml:"name,omitempty"`
	Surname            string      `xml:"surname,omitempty"`
	Company            string      `xml:"company,omitempty"`
	Email              string      `xml:"email,omitempty"`
	Phone              string      `xml:"phone,omitempty"`
	AddressID          string      `xml:"addressId,omitempty"`
	Value              string      `xml:"value,omitempty"`
	Currency           string      `xml:"currency,omitempty"`
	COD                string      `xml:"cod,omitempty"`
	Weight             string      `xml:"weight,omitempty"`
	Eshop              string      `xml:"eshop,omitempty"`
	Street             string      `xml:"street,omitempty"`
	HouseNumber        string      `xml:"houseNumber,omitempty"`
	City               string      `xml:"city,omitempty"`
	Zip                string      `xml:"zip,omitempty"`
	CarrierPickupPoint string      `xml:"carrierPickupPoint,omitempty"`
	Size               *packetSize `xml:"size,omitempty"`
}

type packetSize struct {
	Length int `xml:"length"`
	Width  int `xml:"width"`
	Height int `xml:"height"`
}

type packetsLabelsPdfRequest struct {
	XMLName     xml.Name  `xml:"ns:packetsLabelsPdf"`
	APIPassword string    `xml:"apiPassword"`
	PacketIDs   packetIDs `xml:"packetIds"`
	Format      string    `xml:"format"`
	Offset      int       `xml:"offset"`
}

type packetIDs struct {
	IDs []string `xml:"id"`
}

type packetCourierNumberRequest struct {
	XMLName     xml.Name `xml:"ns:packetCourierNumber"`
	APIPassword string   `xml:"apiPassword"`
	PacketID    string   `xml:"packetId"`
}

type packetsCourierLabelsPdfRequest struct {
	XMLName     xml.Name        `xml:"ns:packetsCourierLabelsPdf"`
	APIPassword string          `xml:"apiPassword"`
	Pairs       courierPairList `xml:"packetIdsWithCourierNumbers"`
	Offset      int             `xml:"offset"`
	Format      string          `xml:"format"`
}

type courierPairList struct {
	Items []courierPair `xml:"packetIdWithCourierNumber"`
}

type courierPair struct {
	PacketID      string `xml:"packetId"`
	CourierNumber string `xml:"courierNumber"`
}

// ---------------------------------------------------------------------------
// Response envelope
// ---------------------------------------------------------------------------

// responseEnvelope matches elements by local name, so any namespace
// prefix the server picks is accepted.
type responseEnvelope struct {
	XMLName xml.Name `xml:"Envelope"`
	Body    struct {
		Fault *soapFault `xml:"Fault"`
		Inner []byte     `xml:",innerxml"`
	} `xml:"Body"`
}

type soapFault struct {
	Code   string `xml:"faultcode"`
	String string `xml:"faultstring"`
	Detail struct {
		Inner []byte `xml:",innerxml"`
	} `xml:"detail"`
}

type attributesFault struct {
	Attributes struct {
		Faults []struct {
			Name  string `xml:"name"`
			Fault string `xml:"fault"`
		} `xml:"fault"`
	} `xml:"attributes"`
}

type createPacketResponse struct {
	XMLName xml.Name `xml:"createPacketResponse"`
	Result  struct {
		ID          string `xml:"id"`
		Barcode     string `xml:"barcode"`
		BarcodeText string `xml:"barcodeText"`
	} `xml:"createPacketResult"`
}

type packetsLabelsPdfResponse struct {
	XMLName xml.Name `xml:"packetsLabelsPdfResponse"`
	Result  string   `xml:"packetsLabelsPdfResult"`
}

type packetCourierNumberResponse struct {
	XMLName xml.Name `xml:"packetCourierNumberResponse"`
	Result  string   `xml:"packetCourierNumberResult"`
}

type packetsCourierLabelsPdfResponse struct {
	XMLName xml.Name `xml:"packetsCourierLabelsPdfResponse"`
	Result  string   `xml:"packetsCourierLabelsPdfResult"`
}

// firstElement returns the local name of the first element in raw and
// the decoder positioned right after it.
func firstElement(raw []byte) (xml.StartElement, *xml.Decoder, bool) {
	dec := xml.NewDecoder(bytes.NewReader(raw))
	for {
		tok, err := dec.Token()
		if err != nil {
			return xml.StartElement{}, nil, false
		}
		if se, ok := tok.(xml.StartElement); ok {
			return se, dec, true
		}
	}
}
