package nullifier

// ClaimComponents is the canonical form of one claim attempt. Address is 40
// lowercase hex characters without prefix; every other field is decimal
// except Nonce, which is 32 hex characters.
type ClaimComponents struct {
	Address   string `json:"address"`
	XP        string `json:"xp"`
	Season    string `json:"season"`
	Timestamp string `json:"timestamp"`
	Nonce     string `json:"nonce"`
}

// Result is the output of nullifier generation.
type Result struct {
	Nullifier  string          `json:"nullifier"`
	Commitment string          `json:"commitment"`
	Components ClaimComponents `json:"components"`
	// NullifierHash is the unreduced digest, kept for audit only. It must
	// never be submitted on-chain.
	NullifierHash string `json:"nullifierHash"`
}

// ProofPublicInputs is the tuple the verification circuit consumes, in
// circuit order: nullifier, xp, address as a decimal integer, season.
type ProofPublicInputs [4]string

// Slice returns the inputs as a slice, the shape ValidateProofInputs accepts.
func (p ProofPublicInputs) Slice() []string {
	return p[:]
}

// ParsedInputs holds public inputs that passed validation.
type ParsedInputs struct {
	Nullifier     string `json:"nullifier"`
	XP            int64  `json:"xp"`
	PlayerAddress string `json:"playerAddress"`
	Season        int64  `json:"season"`
}

// ValidationResult is the outcome of ValidateProofInputs. Exactly one of
// Parsed or Error is set.
type ValidationResult struct {
	Valid  bool          `json:"valid"`
	Error  Kind          `json:"error,omitempty"`
	Reason string        `json:"reason,omitempty"`
	Parsed *ParsedInputs `json:"parsed,omitempty"`
}

// ClaimTicket bundles everything a claim endpoint hands back to the player
// and persists for later redemption.
type ClaimTicket struct {
	Nullifier   string            `json:"nullifier"`
	Commitment  string            `json:"commitment"`
	ProofInputs ProofPublicInputs `json:"proofInputs"`
	StorageKey  string            `json:"storageKey"`
	Components  ClaimComponents   `json:"components"`
}
