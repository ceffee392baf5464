package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"token-recovery-dapp/internal/core/domain"
	"token-recovery-dapp/internal/core/ports"
	"token-recovery-dapp/internal/metrics"
	"token-recovery-dapp/pkg/apperror"
	"token-recovery-dapp/pkg/logger"

	"github.com/rs/zerolog"
)

const defaultConfirmTimeout = 30 * time.Second

// DappConfig holds the on-chain parameters of the dApp.
type DappConfig struct {
	ModuleAddress  string
	ConfirmTimeout time.Duration
}

// DappServiceImpl implements ports.DappService.
type DappServiceImpl struct {
	wallet  ports.WalletAdapter
	chain   ports.ChainClient
	notices ports.NoticeService
	audit   ports.AuditService
	cfg     DappConfig
	log     zerolog.Logger
}

// NewDappService creates a new DappServiceImpl.
func NewDappService(
	wallet ports.WalletAdapter,
	chain ports.ChainClient,
	notices ports.NoticeService,
	audit ports.AuditService,
	cfg DappConfig,
	log zerolog.Logger,
) *DappServiceImpl {
	if cfg.ConfirmTimeout <= 0 {
		cfg.ConfirmTimeout = defaultConfirmTimeout
	}
	return &DappServiceImpl{
		wallet:  wallet,
		chain:   chain,
		notices: notices,
		audit:   audit,
		cfg:     cfg,
		log:     logger.Component(log, "dapp_service"),
	}
}

// Account returns the connected account and whether its recovery store exists.
func (s *DappServiceImpl) Account(ctx context.Context) (*domain.AccountOverview, error) {
	session, err := s.connectedSession()
	if err != nil {
		return nil, err
	}

	resources, err := s.chain.GetAccountResources(ctx, session.Account.Address)
	if err != nil {
		s.log.Error().Err(err).Str("account", session.Account.Address).Msg("checking recovery initialization failed")
		return nil, apperror.ErrChainQuery(err)
	}

	return &domain.AccountOverview{
		Session:             session,
		RecoveryInitialized: domain.HasResource(resources, domain.RecoveryStoreType(s.cfg.ModuleAddress)),
	}, nil
}

// Network returns the wallet's network and the node's ledger head.
func (s *DappServiceImpl) Network(ctx context.Context) (*domain.NetworkOverview, error) {
	ledger, err := s.chain.LedgerInfo(ctx)
	if err != nil {
		return nil, apperror.ErrChainQuery(err)
	}
	return &domain.NetworkOverview{
		Network: s.wallet.State().Network,
		Ledger:  ledger,
	}, nil
}

// InitializeRecovery publishes the recovery store for the connected account.
// A nil result with a nil error means the store already existed.
func (s *DappServiceImpl) InitializeRecovery(ctx context.Context) (*domain.TransactionResult, error) {
	session, err := s.connectedSession()
	if err != nil {
		return nil, err
	}

	payload := domain.BuildInitializeRecovery(s.cfg.ModuleAddress)
	result, err := s.submitAndWait(ctx, domain.AuditActionInitializeRecovery, session, payload)
	if err != nil {
		if isAlreadyExists(err) {
			s.log.Info().Str("account", session.Account.Address).Msg("recovery store already initialized")
			return nil, nil
		}
		s.fail("Failed to initialize token recovery", err)
		return nil, err
	}

	s.notices.Post(domain.NoticeLevelInfo, "Success", "Token recovery initialized successfully")
	return result, nil
}

// RequestRecovery asks for amount APT sent by mistake to be returned to "to".
func (s *DappServiceImpl) RequestRecovery(ctx context.Context, to, amount string) (*domain.TransactionResult, error) {
	session, err := s.connectedSession()
	if err != nil {
		return nil, err
	}
	to, octas, err := validateTransferInput(to, amount)
	if err != nil {
		return nil, err
	}

	payload := domain.BuildRequestRecovery(s.cfg.ModuleAddress, to, octas)
	result, err := s.submitAndWait(ctx, domain.AuditActionRequestRecovery, session, payload)
	if err != nil {
		s.fail("Failed to submit token recovery request", err)
		return nil, err
	}

	s.notices.Post(domain.NoticeLevelInfo, "Success", "Token recovery request submitted and confirmed")
	return result, nil
}

// Transfer sends amount APT from the connected account to "to".
func (s *DappServiceImpl) Transfer(ctx context.Context, to, amount string) (*domain.TransactionResult, error) {
	session, err := s.connectedSession()
	if err != nil {
		return nil, err
	}
	to, octas, err := validateTransferInput(to, amount)
	if err != nil {
		return nil, err
	}

	result, err := s.submitAndWait(ctx, domain.AuditActionTransfer, session, domain.BuildTransfer(to, octas))
	if err != nil {
		s.fail("Transfer failed", err)
		return nil, err
	}

	s.notices.Post(domain.NoticeLevelInfo, "Success", fmt.Sprintf("Transaction succeeded, hash: %s", result.Hash))
	return result, nil
}

// WriteMessage posts content to the message board, setting the board up
// first if needed.
func (s *DappServiceImpl) WriteMessage(ctx context.Context, content string) (*domain.TransactionResult, error) {
	session, err := s.connectedSession()
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateMessage(content); err != nil {
		return nil, apperror.ErrInvalidMessage()
	}

	s.initMessageBoard(ctx, session)

	payload := domain.BuildWriteMessage(s.cfg.ModuleAddress, content)
	result, err := s.submitAndWait(ctx, domain.AuditActionWriteMessage, session, payload)
	if err != nil {
		s.fail("Failed to write message", err)
		return nil, err
	}

	s.notices.Post(domain.NoticeLevelInfo, "Success", fmt.Sprintf("Transaction succeeded, hash: %s", result.Hash))
	return result, nil
}

// Message reads the current board content.
func (s *DappServiceImpl) Message(ctx context.Context) (string, error) {
	values, err := s.chain.View(ctx, domain.GetMessageContentFunction(s.cfg.ModuleAddress), nil, nil)
	if err != nil {
		s.fail("Failed to read message", err)
		return "", apperror.ErrChainQuery(err)
	}
	if len(values) == 0 {
		return "", nil
	}

	var content string
	if err := json.Unmarshal(values[0], &content); err != nil {
		return "", apperror.ErrChainQuery(fmt.Errorf("decoding message content: %w", err))
	}
	return content, nil
}

// initMessageBoard is best-effort; an already initialized board is expected.
func (s *DappServiceImpl) initMessageBoard(ctx context.Context, session domain.WalletSession) {
	_, err := s.wallet.SignAndSubmitTransaction(ctx, domain.BuildInitMessageBoard(session.Account.Address))
	if err == nil {
		s.notices.Post(domain.NoticeLevelInfo, "Success", "Message board initialized successfully")
		return
	}
	if isAlreadyExists(err) {
		return
	}
	s.log.Warn().Err(err).Msg("message board init failed")
	s.fail("Error", err)
}

func (s *DappServiceImpl) connectedSession() (domain.WalletSession, error) {
	session := s.wallet.State()
	if !session.Connected || !session.FullyConnected() {
		return domain.WalletSession{}, apperror.ErrWalletNotConnected()
	}
	return session, nil
}

// submitAndWait hands payload to the wallet and waits, bounded by the
// confirm timeout, for the node to commit it.
func (s *DappServiceImpl) submitAndWait(
	ctx context.Context,
	action domain.AuditAction,
	session domain.WalletSession,
	payload domain.TransactionPayload,
) (*domain.TransactionResult, error) {
	label := strings.ToLower(string(action))

	submitted, err := s.wallet.SignAndSubmitTransaction(ctx, payload)
	if err != nil {
		metrics.Transactions.WithLabelValues(label, "rejected").Inc()
		if errors.Is(err, ports.ErrUserRejected) {
			return nil, apperror.ErrWalletRejected(err)
		}
		return nil, apperror.ErrSubmissionFailed(err)
	}

	s.audit.Log(ctx, domain.NewAuditLog(action, session, submitted.Hash))

	waitCtx, cancel := context.WithTimeout(ctx, s.cfg.ConfirmTimeout)
	defer cancel()

	start := time.Now()
	result, err := s.chain.WaitForTransaction(waitCtx, submitted.Hash)
	if err != nil {
		if errors.Is(waitCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			metrics.Transactions.WithLabelValues(label, "timeout").Inc()
			return nil, apperror.ErrConfirmationTimeout(fmt.Errorf("transaction %s: %w", submitted.Hash, err))
		}
		metrics.Transactions.WithLabelValues(label, "error").Inc()
		return nil, apperror.ErrChainQuery(err)
	}
	metrics.ConfirmationLatency.WithLabelValues(label).Observe(time.Since(start).Seconds())

	if !result.Success {
		metrics.Transactions.WithLabelValues(label, "aborted").Inc()
		return result, apperror.ErrTransactionAborted(result.VMStatus)
	}

	metrics.Transactions.WithLabelValues(label, "success").Inc()
	s.log.Info().Str("action", string(action)).Str("hash", result.Hash).Msg("transaction confirmed")
	return result, nil
}

// fail posts an error notice for a failed action.
func (s *DappServiceImpl) fail(title string, err error) {
	s.notices.Post(domain.NoticeLevelError, title, userMessage(err))
}

func validateTransferInput(to, amount string) (string, string, error) {
	to = strings.TrimSpace(to)
	if err := domain.ValidateAddress(to); err != nil {
		return "", "", apperror.ErrInvalidAddress()
	}
	octas, err := domain.ToOctas(amount)
	if err != nil {
		return "", "", apperror.ErrInvalidAmount()
	}
	return to, octas, nil
}

func isAlreadyExists(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "already exists") || strings.Contains(msg, "already_exists")
}

func userMessage(err error) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		if appErr.Err != nil {
			return fmt.Sprintf("%s: %v", appErr.Message, appErr.Err)
		}
		return appErr.Message
	}
	return err.Error()
}
