package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const module = "0x5b1c3f1d6e0b6d8f8e36c2f0a7b4d8f1c1e9a0d4b3c2e1f0a9b8c7d6e5f4a3b2"

func TestWalletSession_States(t *testing.T) {
	acct := &Account{Address: "0x1"}

	tests := []struct {
		name           string
		session        WalletSession
		hasWallet      bool
		fullyConnected bool
	}{
		{"empty", WalletSession{}, false, false},
		{"wallet only", WalletSession{WalletName: "Petra"}, true, false},
		{"account without wallet", WalletSession{Account: acct}, false, false},
		{"wallet and account", WalletSession{WalletName: "Petra", Connected: true, Account: acct}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.hasWallet, tt.session.HasWallet())
			assert.Equal(t, tt.fullyConnected, tt.session.FullyConnected())
		})
	}
}

func TestWalletSession_AccountAddress(t *testing.T) {
	assert.Equal(t, "", WalletSession{}.AccountAddress())
	assert.Equal(t, "0xabc", WalletSession{Account: &Account{Address: "0xabc"}}.AccountAddress())
}

func TestToOctas(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0.00000001", "1"},
		{"1", "100000000"},
		{"123.456789", "12345678900"},
		{"0.5", "50000000"},
		{"0.000000015", "2"},
		{"0.000000025", "3"},
		{" 2.5 ", "250000000"},
		{"10000", "1000000000000"},
		{"92233720368.54775807", "9223372036854775807"},
		{"123456789012345678.12345678", "12345678901234567812345678"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			got, err := ToOctas(tt.amount)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToOctas_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		wantErr error
	}{
		{"empty", "", ErrAmountNotNumeric},
		{"letters", "abc", ErrAmountNotNumeric},
		{"NaN", "NaN", ErrAmountNotNumeric},
		{"infinity", "Inf", ErrAmountNotNumeric},
		{"zero", "0", ErrAmountNotPositive},
		{"negative", "-1", ErrAmountNotPositive},
		{"rounds to zero", "0.000000004", ErrAmountNotPositive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToOctas(tt.amount)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, ValidateAmount("0.1"))
	assert.NoError(t, ValidateAmount("0.000000001"))
	assert.Error(t, ValidateAmount("0"))
	assert.Error(t, ValidateAmount("1e"))
}

func TestFromOctas(t *testing.T) {
	got, err := FromOctas("12345678900")
	require.NoError(t, err)
	assert.Equal(t, "123.456789", got)

	_, err = FromOctas("x")
	assert.ErrorIs(t, err, ErrAmountNotNumeric)
}

func TestValidateAddress(t *testing.T) {
	hex64 := strings.Repeat("a", 64)

	tests := []struct {
		name    string
		addr    string
		wantErr bool
	}{
		{"valid lowercase", "0x" + hex64, false},
		{"valid mixed case", "0x" + strings.Repeat("aB", 32), false},
		{"65 characters", "0x" + hex64[:63], true},
		{"67 characters", "0x" + hex64 + "a", true},
		{"missing prefix", "00" + hex64, true},
		{"66 characters without prefix", hex64 + "ab", true},
		{"non-hex digit", "0x" + strings.Repeat("g", 64), true},
		{"uppercase prefix", "0X" + hex64, true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAddress(tt.addr)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAddress)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateMessage(t *testing.T) {
	assert.NoError(t, ValidateMessage("yoho"))
	assert.NoError(t, ValidateMessage(strings.Repeat("x", MaxMessageLength)))
	assert.NoError(t, ValidateMessage(strings.Repeat("é", MaxMessageLength)))
	assert.ErrorIs(t, ValidateMessage(""), ErrInvalidMessage)
	assert.ErrorIs(t, ValidateMessage("   "), ErrInvalidMessage)
	assert.ErrorIs(t, ValidateMessage(strings.Repeat("x", MaxMessageLength+1)), ErrInvalidMessage)
}

func TestBuilders(t *testing.T) {
	to := "0x" + strings.Repeat("1", 64)

	t.Run("initialize recovery", func(t *testing.T) {
		p := BuildInitializeRecovery(module)
		assert.Equal(t, module+"::token_recovery::initialize_recovery", p.Function)
		assert.Empty(t, p.TypeArguments)
		assert.Empty(t, p.FunctionArguments)
	})

	t.Run("request recovery", func(t *testing.T) {
		p := BuildRequestRecovery(module, to, "100000000")
		assert.Equal(t, module+"::token_recovery::request_recovery", p.Function)
		assert.Equal(t, []string{AptosCoinType}, p.TypeArguments)
		assert.Equal(t, []string{to, "100000000"}, p.FunctionArguments)
	})

	t.Run("write message", func(t *testing.T) {
		p := BuildWriteMessage(module, "hello")
		assert.Equal(t, module+"::message_board::write_message", p.Function)
		assert.Equal(t, []string{"hello"}, p.FunctionArguments)
	})

	t.Run("init message board", func(t *testing.T) {
		p := BuildInitMessageBoard("0xabc")
		assert.Equal(t, "0xabc::message_board::init_module_for_test", p.Function)
	})

	t.Run("transfer", func(t *testing.T) {
		p := BuildTransfer(to, "5")
		assert.Equal(t, TransferFunction, p.Function)
		assert.Equal(t, []string{to, "5"}, p.FunctionArguments)
	})
}

func TestHasResource(t *testing.T) {
	resources := []AccountResource{
		{Type: "0x1::account::Account"},
		{Type: RecoveryStoreType(module)},
	}

	assert.True(t, HasResource(resources, RecoveryStoreType(module)))
	assert.False(t, HasResource(resources, RecoveryStoreType("0x2")))
	assert.False(t, HasResource(nil, RecoveryStoreType(module)))
}

func TestNewAuditLog(t *testing.T) {
	session := WalletSession{WalletName: "Petra", Connected: true, Account: &Account{Address: "0xabc"}}

	entry := NewAuditLog(AuditActionTransfer, session, "0xhash")
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, AuditActionTransfer, entry.Action)
	assert.Equal(t, "Petra", entry.WalletName)
	assert.Equal(t, "0xabc", entry.Account)
	assert.Equal(t, "0xhash", entry.TxHash)
	assert.False(t, entry.CreatedAt.IsZero())
}
