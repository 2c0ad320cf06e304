package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pranikov/sitekit/internal/domain/message"
)

// backendMessage is the contact message shape served by the backend.
type backendMessage struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
}

func (m backendMessage) toMessage(read *message.ReadSet) message.ContactMessage {
	id := strconv.FormatInt(m.ID, 10)
	return message.ContactMessage{
		ID:      id,
		Name:    m.Name,
		Email:   m.Email,
		Subject: m.Subject,
		Message: m.Message,
		Date:    m.CreatedAt,
		Read:    read.Has(id),
	}
}

// SendContactMessage submits a contact form message.
func (c *Client) SendContactMessage(ctx context.Context, in message.Input) (message.ContactMessage, error) {
	const failMsg = "failed to send message"

	if err := in.Validate(); err != nil {
		return message.ContactMessage{}, err
	}
	payload, err := json.Marshal(in)
	if err != nil {
		return message.ContactMessage{}, fmt.Errorf("encoding message: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/contact", bytes.NewReader(payload), false)
	if err != nil {
		return message.ContactMessage{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.do(req)
	if err != nil {
		return message.ContactMessage{}, transportError(failMsg, err)
	}
	if !res.ok() {
		msg, ok := bodyMessage(res.body)
		if !ok {
			msg = failMsg
		}
		return message.ContactMessage{}, newStatusError(res, msg)
	}

	var data backendMessage
	if err := decode(res.body, messageResolved, &data); err != nil {
		return message.ContactMessage{}, err
	}
	return data.toMessage(nil), nil
}

// ListContactMessages fetches all contact messages. A message is marked read
// when its ID is in read.
func (c *Client) ListContactMessages(ctx context.Context, read *message.ReadSet) ([]message.ContactMessage, error) {
	const failMsg = "failed to load messages"

	req, err := c.newRequest(ctx, http.MethodGet, "/api/contact", nil, true)
	if err != nil {
		return nil, err
	}
	res, err := c.do(req)
	if err != nil {
		return nil, transportError(failMsg, err)
	}
	if !res.ok() {
		return nil, newStatusError(res, failMsg)
	}

	var data []backendMessage
	if err := decode(res.body, messageListResolved, &data); err != nil {
		return nil, err
	}

	messages := make([]message.ContactMessage, 0, len(data))
	for _, m := range data {
		messages = append(messages, m.toMessage(read))
	}
	return messages, nil
}

// DeleteContactMessage deletes the message with the given ID.
func (c *Client) DeleteContactMessage(ctx context.Context, id string) error {
	const failMsg = "failed to delete message"

	if id == "" {
		return message.ErrInvalidInput
	}
	req, err := c.newRequest(ctx, http.MethodDelete, "/api/contact/"+url.PathEscape(id), nil, true)
	if err != nil {
		return err
	}
	res, err := c.do(req)
	if err != nil {
		return transportError(failMsg, err)
	}
	if !res.ok() {
		return newStatusError(res, failMsg)
	}
	return nil
}
