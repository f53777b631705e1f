package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"khabar/domain"
	"khabar/usecase/contact_usecase"
	"khabar/usecase/subscribe_usecase"
)

// SubscriberHandler serves newsletter signups and the contact relay.
type SubscriberHandler struct {
	subscribe *subscribe_usecase.SubscribeUsecase
	contact   *contact_usecase.ContactUsecase
}

func NewSubscriberHandler(
	subscribe *subscribe_usecase.SubscribeUsecase,
	contact *contact_usecase.ContactUsecase,
) *SubscriberHandler {
	return &SubscriberHandler{subscribe: subscribe, contact: contact}
}

func (h *SubscriberHandler) Subscribe(c echo.Context) error {
	var req SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if _, err := h.subscribe.Subscribe(c.Request().Context(), req.Email); err != nil {
		return handleError(c, err, "subscribe")
	}
	return c.JSON(http.StatusCreated, MessageResponse{
		Message: "Thank you for subscribing! A welcome email has been sent.",
	})
}

func (h *SubscriberHandler) List(c echo.Context) error {
	subscribers, err := h.subscribe.List(c.Request().Context())
	if err != nil {
		return handleError(c, err, "list subscribers")
	}
	return c.JSON(http.StatusOK, subscribers)
}

func (h *SubscriberHandler) Contact(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	msg := domain.ContactMessage{Name: req.Name, Email: req.Email, Message: req.Message}
	if err := h.contact.Send(c.Request().Context(), msg); err != nil {
		return handleError(c, err, "contact relay")
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Your message has been sent. Thank you!"})
}
