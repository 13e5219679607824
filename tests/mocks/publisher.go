package mocks

import (
	"context"

	"stockadmin/internal/realtime"

	"github.com/stretchr/testify/mock"
)

type Publisher struct {
	mock.Mock
}

func (m *Publisher) Publish(ctx context.Context, channel, event string, payload realtime.Payload) error {
	args := m.Called(ctx, channel, event, payload)
	return args.Error(0)
}
