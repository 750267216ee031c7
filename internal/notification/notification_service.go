// Package notification renders the account mails and hands them to the
// configured transport.
package notification

import (
	"context"

	"go-hrfine/internal/shared/contextutil"

	"go.uber.org/zap"
)

type Service struct {
	renderer   *renderer
	dispatcher Dispatcher
	company    string
	logger     *zap.Logger
}

func NewService(dispatcher Dispatcher, company string, logger ...*zap.Logger) (*Service, error) {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	r, err := newRenderer()
	if err != nil {
		return nil, err
	}
	return &Service{renderer: r, dispatcher: dispatcher, company: company, logger: l}, nil
}

func (s *Service) SendRegistration(ctx context.Context, email, empID, password string) error {
	return s.send(ctx, KindRegistration, email, empID, password)
}

func (s *Service) SendPasswordReset(ctx context.Context, email, empID, password string) error {
	return s.send(ctx, KindPasswordReset, email, empID, password)
}

func (s *Service) send(ctx context.Context, kind, email, empID, password string) error {
	subject, body, err := s.renderer.render(kind, templateData{
		Company:  s.company,
		EmpID:    empID,
		Password: password,
	})
	if err != nil {
		return err
	}

	if err := s.dispatcher.Dispatch(ctx, Message{
		Kind:    kind,
		EmpID:   empID,
		To:      email,
		Subject: subject,
		Body:    body,
	}); err != nil {
		return err
	}

	contextutil.GetLogger(ctx, s.logger).Info("mail dispatched",
		zap.String("kind", kind),
		zap.String("emp_id", empID),
	)
	return nil
}
