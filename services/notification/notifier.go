package notification

import (
	"context"
	"errors"
	"time"

	"pioneertravel/models"
	"pioneertravel/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	KindBusiness = "business"
	KindCustomer = "customer"
)

const defaultSendTimeout = 15 * time.Second

// DefaultNotifier renders both emails for an inquiry and sends them in parallel.
type DefaultNotifier struct {
	Sender     Sender
	Renderer   Renderer
	From       string
	BusinessTo string
	Timeout    time.Duration
	Logger     *zap.Logger

	// OnFailure, when set, is called once per email that could not be
	// rendered or sent.
	OnFailure func(kind string, inquiry *models.BookingInquiry, err error)
}

func NewDefaultNotifier(sender Sender, renderer Renderer, from, businessTo string, timeout time.Duration, logger *zap.Logger) *DefaultNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = defaultSendTimeout
	}
	return &DefaultNotifier{
		Sender:     sender,
		Renderer:   renderer,
		From:       from,
		BusinessTo: businessTo,
		Timeout:    timeout,
		Logger:     logger,
	}
}

// NotifyInquiry sends the business notification and the customer
// acknowledgment. Both are attempted even if one fails. Cancelling ctx does
// not abort sends already under way; only Timeout bounds them.
func (n *DefaultNotifier) NotifyInquiry(ctx context.Context, inquiry *models.BookingInquiry) error {
	if inquiry == nil {
		return errors.New("nil booking inquiry")
	}

	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.Timeout)
	defer cancel()

	var (
		g       errgroup.Group
		errBiz  error
		errCust error
	)
	g.Go(func() error {
		errBiz = n.send(sendCtx, KindBusiness, inquiry)
		return nil
	})
	g.Go(func() error {
		errCust = n.send(sendCtx, KindCustomer, inquiry)
		return nil
	})
	_ = g.Wait()

	return errors.Join(errBiz, errCust)
}

func (n *DefaultNotifier) send(ctx context.Context, kind string, inquiry *models.BookingInquiry) (err error) {
	defer func() {
		if err == nil {
			utils.NotificationsSentTotal.WithLabelValues(kind).Inc()
			return
		}
		utils.NotificationFailuresTotal.WithLabelValues(kind).Inc()
		n.Logger.Error("Failed to send booking email",
			zap.String("kind", kind),
			zap.String("id", inquiry.ID),
			zap.Error(err),
		)
		if n.OnFailure != nil {
			n.OnFailure(kind, inquiry, err)
		}
	}()

	msg, err := n.compose(kind, inquiry)
	if err != nil {
		return err
	}
	return n.Sender.Send(ctx, msg)
}

func (n *DefaultNotifier) compose(kind string, inquiry *models.BookingInquiry) (Message, error) {
	msg := Message{From: n.From}
	var err error
	switch kind {
	case KindBusiness:
		msg.To = n.BusinessTo
		msg.Subject = n.Renderer.BusinessSubject(inquiry)
		msg.HTML, err = n.Renderer.RenderBusinessNotification(inquiry)
	default:
		msg.To = inquiry.Email
		msg.Subject = n.Renderer.CustomerSubject(inquiry)
		msg.HTML, err = n.Renderer.RenderCustomerAcknowledgment(inquiry)
	}
	return msg, err
}
