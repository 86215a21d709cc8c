package attest

import (
	errorsmod "cosmossdk.io/errors"
)

// Codespace is the error codespace shared by both rotation protocols.
const Codespace = "attest"

var ErrMalformedSignature = errorsmod.Register(Codespace, 2, "malformed signature")
