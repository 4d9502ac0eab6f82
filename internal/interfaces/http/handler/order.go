package handler

import (
	"context"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/packetery/backend/internal/application/shipment"
)

// maxColumnOrders caps the ids accepted by the order list columns endpoint
const maxColumnOrders = 200

// ShipmentUseCase reads and writes the Packeta meta of orders
type ShipmentUseCase interface {
	Get(ctx context.Context, orderID int64) (*shipment.ShipmentResponse, error)
	Upsert(ctx context.Context, orderID int64, req shipment.UpsertShipmentRequest) (*shipment.ShipmentResponse, error)
	SelectPickupPoint(ctx context.Context, orderID int64, point shipment.PickupPointDTO) (*shipment.ShipmentResponse, error)
	OrderListColumns(ctx context.Context, orderIDs []int64) ([]shipment.OrderColumns, error)
}

// PacketSubmitter creates packets for orders
type PacketSubmitter interface {
	Submit(ctx context.Context, req shipment.SubmitRequest) (*shipment.SubmitResult, error)
}

// HandoverGenerator renders the handover sheet of submitted orders
type HandoverGenerator interface {
	Generate(ctx context.Context, req shipment.HandoverRequest) (*shipment.HandoverDocument, error)
}

// OrderHandler serves the order endpoints used by the storefront and the order list
type OrderHandler struct {
	BaseHandler
	shipments ShipmentUseCase
	submitter PacketSubmitter
	handover  HandoverGenerator
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(shipments ShipmentUseCase, submitter PacketSubmitter, handover HandoverGenerator) *OrderHandler {
	return &OrderHandler{shipments: shipments, submitter: submitter, handover: handover}
}

// GetShipment godoc
//
//	@ID				getOrderShipment
//
//	@Summary		Get order shipment
//	@Description	Return the Packeta meta of an order
//	@Tags			orders
//	@Produce		json
//	@Param			id	path		int	true	"Order ID"
//	@Success		200		{object}	APIResponse[shipment.ShipmentResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/orders/{id}/shipment [get]
func (h *OrderHandler) GetShipment(c *gin.Context) {
	orderID, ok := h.orderID(c)
	if !ok {
		return
	}
	resp, err := h.shipments.Get(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// UpsertShipment godoc
//
//	@ID				upsertOrderShipment
//
//	@Summary		Save order shipment
//	@Description	Store the checkout data of an order
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			id	path		int	true	"Order ID"
//	@Param			request	body		shipment.UpsertShipmentRequest	true	"Shipment data"
//	@Success		200		{object}	APIResponse[shipment.ShipmentResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/orders/{id}/shipment [put]
func (h *OrderHandler) UpsertShipment(c *gin.Context) {
	orderID, ok := h.orderID(c)
	if !ok {
		return
	}
	var req shipment.UpsertShipmentRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.shipments.Upsert(c.Request.Context(), orderID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SelectPickupPoint godoc
//
//	@ID				selectOrderPickupPoint
//
//	@Summary		Select pickup point
//	@Description	Store the pickup point chosen in the widget
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			id	path		int	true	"Order ID"
//	@Param			request	body		shipment.PickupPointDTO	true	"Pickup point"
//	@Success		200		{object}	APIResponse[shipment.ShipmentResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/orders/{id}/pickup-point [put]
func (h *OrderHandler) SelectPickupPoint(c *gin.Context) {
	orderID, ok := h.orderID(c)
	if !ok {
		return
	}
	var req shipment.PickupPointDTO
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.shipments.SelectPickupPoint(c.Request.Context(), orderID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Columns godoc
//
//	@ID				listOrderColumns
//
//	@Summary		Get order list columns
//	@Description	Return the packet id and destination columns of the order list
//	@Tags			orders
//	@Produce		json
//	@Param			ids	query		string	true	"Comma separated order IDs"
//	@Success		200		{object}	APIResponse[[]shipment.OrderColumns]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/orders/columns [get]
func (h *OrderHandler) Columns(c *gin.Context) {
	ids, err := parseIDList(c.Query("ids"))
	if err != nil {
		h.BadRequest(c, "ids must be a comma separated list of order IDs")
		return
	}
	if len(ids) > maxColumnOrders {
		h.BadRequest(c, "Too many order IDs")
		return
	}
	columns, err := h.shipments.OrderListColumns(c.Request.Context(), ids)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, columns)
}

// Submit godoc
//
//	@ID				submitOrders
//
//	@Summary		Submit orders
//	@Description	Create Packeta packets for the selected orders
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		shipment.SubmitRequest	true	"Orders to submit"
//	@Success		200		{object}	APIResponse[shipment.SubmitResult]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/orders/submit [post]
func (h *OrderHandler) Submit(c *gin.Context) {
	var req shipment.SubmitRequest
	if !h.bindJSON(c, &req) {
		return
	}
	result, err := h.submitter.Submit(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Handover godoc
//
//	@ID				generateHandover
//
//	@Summary		Generate handover sheet
//	@Description	Render the handover sheet PDF of submitted orders
//	@Tags			orders
//	@Accept			json
//	@Produce		application/pdf
//	@Param			request	body		shipment.HandoverRequest	true	"Orders to hand over"
//	@Success		200		{file}	binary
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/orders/handover [post]
func (h *OrderHandler) Handover(c *gin.Context) {
	var req shipment.HandoverRequest
	if !h.bindJSON(c, &req) {
		return
	}
	doc, err := h.handover.Generate(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	writeDocumentHeaders(c, doc.PacketCount, doc.ArchiveURL)
	h.PDF(c, doc.FileName, doc.PDF)
}

func (h *OrderHandler) orderID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.BadRequest(c, "Invalid order ID")
		return 0, false
	}
	return id, true
}

func parseIDList(raw string) ([]int64, error) {
	ids := make([]int64, 0)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil || id <= 0 {
			return nil, strconv.ErrSyntax
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func writeDocumentHeaders(c *gin.Context, packets int, archiveURL string) {
	c.Header("X-Packet-Count", strconv.Itoa(packets))
	if archiveURL != "" {
		c.Header("X-Archive-URL", archiveURL)
	}
}
