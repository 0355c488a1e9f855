package inktypes

import (
	"context"
	"errors"
)

// TxInfo identifies a submitted transaction. The concrete type is chosen by
// the connection implementation; generated code returns it unchanged and
// never inspects it.
type TxInfo any

// ContractEvent is one raw event emitted by some contract, as delivered by
// a connection. The discriminant is the position of the event in the
// emitting contract's declared event list.
type ContractEvent struct {
	Emitter      AccountID
	Discriminant uint8
	Data         []byte
}

// Connection reads contract state and fetches emitted events. It is the
// capability read-only generated methods require.
type Connection interface {
	// Read executes a read-only call against account and returns the raw
	// SCALE-encoded response bytes. payload carries the 4-byte selector
	// followed by the encoded arguments.
	Read(ctx context.Context, account AccountID, payload []byte) ([]byte, error)

	// ContractEvents returns every contract event emitted by the
	// transaction identified by tx, in emission order.
	ContractEvents(ctx context.Context, tx TxInfo) ([]ContractEvent, error)
}

// SignedConnection additionally submits state-changing operations, signed
// by whatever account the implementation was constructed around.
type SignedConnection interface {
	Connection

	// Instantiate deploys a new contract instance from uploaded code.
	// salt disambiguates repeated deployments of the same code and data.
	Instantiate(ctx context.Context, codeHash Hash, salt, payload []byte) (AccountID, error)

	// InstantiateWithValue is Instantiate with an endowment transferred
	// to the new contract.
	InstantiateWithValue(ctx context.Context, codeHash Hash, salt, payload []byte, value Balance) (AccountID, error)

	// Exec submits a mutating call to account and returns its receipt.
	Exec(ctx context.Context, account AccountID, payload []byte) (TxInfo, error)

	// ExecWithValue is Exec with a token value transferred along the call.
	ExecWithValue(ctx context.Context, account AccountID, payload []byte, value Balance) (TxInfo, error)

	// UploadCode stores contract code on chain. Implementations return
	// ErrCodeAlreadyStored (possibly wrapped) when the code hash is
	// already known.
	UploadCode(ctx context.Context, code []byte, codeHash Hash) (TxInfo, error)
}

// ErrCodeAlreadyStored signals that uploaded code is already on chain.
// Generated upload routines treat it as success.
var ErrCodeAlreadyStored = errors.New("contract code already stored on chain")
