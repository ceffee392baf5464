package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"token-recovery-dapp/internal/core/domain"
	"token-recovery-dapp/internal/core/ports/mocks"

	"go.uber.org/mock/gomock"
)

func TestAuditService_Log_PersistsToRepo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuditRepository(ctrl)
	svc := NewAuditService(mockRepo, newTestLogger())

	done := make(chan struct{})
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, log *domain.AuditLog) error {
			if log.Action != domain.AuditActionTransfer {
				t.Errorf("expected TRANSFER, got %s", log.Action)
			}
			if log.TxHash != "0xfeed" {
				t.Errorf("expected tx hash 0xfeed, got %s", log.TxHash)
			}
			close(done)
			return nil
		},
	)

	svc.Log(context.Background(), domain.NewAuditLog(domain.AuditActionTransfer, connectedSession("Petra"), "0xfeed"))

	select {
	case <-done:
		// OK
	case <-time.After(2 * time.Second):
		t.Fatal("audit log not persisted in time")
	}
}

func TestAuditService_Log_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuditRepository(ctrl)
	svc := NewAuditService(mockRepo, newTestLogger())

	done := make(chan struct{})
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, *domain.AuditLog) error {
			defer close(done)
			return errors.New("relation \"audit_logs\" does not exist")
		},
	)

	svc.Log(context.Background(), domain.NewAuditLog(domain.AuditActionConnect, connectedSession("Petra"), ""))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("audit repo not called in time")
	}
}

func TestAuditService_Log_NilRepo(t *testing.T) {
	svc := NewAuditService(nil, newTestLogger())

	// Should not panic
	svc.Log(context.Background(), domain.NewAuditLog(domain.AuditActionDisconnect, disconnectedSession("Petra"), ""))

	time.Sleep(50 * time.Millisecond) // let goroutine run
}
