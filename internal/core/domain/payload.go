package domain

import "fmt"

const (
	// AptosCoinType is the native coin type argument.
	AptosCoinType = "0x1::aptos_coin::AptosCoin"

	// TransferFunction moves APT between accounts, creating the recipient if needed.
	TransferFunction = "0x1::aptos_account::transfer"
)

// TransactionPayload is an entry-function call handed to the wallet for signing.
// Arguments are string-encoded so large integers survive JSON transport.
type TransactionPayload struct {
	Function          string   `json:"function"`
	TypeArguments     []string `json:"typeArguments"`
	FunctionArguments []string `json:"functionArguments"`
}

// RecoveryStoreType is the resource type published by initialize_recovery.
func RecoveryStoreType(module string) string {
	return fmt.Sprintf("%s::token_recovery::RecoveryStore", module)
}

// GetMessageContentFunction is the view function returning the board content.
func GetMessageContentFunction(module string) string {
	return fmt.Sprintf("%s::message_board::get_message_content", module)
}

func BuildInitializeRecovery(module string) TransactionPayload {
	return TransactionPayload{
		Function:          fmt.Sprintf("%s::token_recovery::initialize_recovery", module),
		TypeArguments:     []string{},
		FunctionArguments: []string{},
	}
}

// BuildRequestRecovery asks the recovery program to return octas sent to the wrong address.
func BuildRequestRecovery(module, to, octas string) TransactionPayload {
	return TransactionPayload{
		Function:          fmt.Sprintf("%s::token_recovery::request_recovery", module),
		TypeArguments:     []string{AptosCoinType},
		FunctionArguments: []string{to, octas},
	}
}

func BuildWriteMessage(module, content string) TransactionPayload {
	return TransactionPayload{
		Function:          fmt.Sprintf("%s::message_board::write_message", module),
		TypeArguments:     []string{},
		FunctionArguments: []string{content},
	}
}

// BuildInitMessageBoard targets the board module published under the
// signer's own account. The call aborts with "already exists" once the
// board is set up.
func BuildInitMessageBoard(account string) TransactionPayload {
	return TransactionPayload{
		Function:          fmt.Sprintf("%s::message_board::init_module_for_test", account),
		TypeArguments:     []string{},
		FunctionArguments: []string{},
	}
}

func BuildTransfer(to, octas string) TransactionPayload {
	return TransactionPayload{
		Function:          TransferFunction,
		TypeArguments:     []string{},
		FunctionArguments: []string{to, octas},
	}
}
