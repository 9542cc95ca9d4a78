// Package fair implements the commit-reveal seed protocol and outcome
// derivation. It holds no engine state: every function here is runnable by a
// third party from published values alone.
package fair

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// SeedPair is one round's fairness commitment. ServerSeedHash is published
// before any wager is accepted; ServerSeed is revealed only after the round's
// outcome is final.
type SeedPair struct {
	ServerSeed     string `json:"server_seed,omitempty"`
	ServerSeedHash string `json:"server_seed_hash"`
	ClientSeed     string `json:"client_seed"`
	Nonce          uint64 `json:"nonce"`
}

// NewSeedPair builds a seed pair, generating any missing field. The hash is
// always recomputed from the server seed.
func NewSeedPair(serverSeed, clientSeed string, nonce uint64) SeedPair {
	if serverSeed == "" {
		serverSeed = GenerateServerSeed()
	}
	if clientSeed == "" {
		clientSeed = GenerateClientSeed()
	}
	return SeedPair{
		ServerSeed:     serverSeed,
		ServerSeedHash: HashServerSeed(serverSeed),
		ClientSeed:     clientSeed,
		Nonce:          nonce,
	}
}

// Public returns a copy safe to broadcast before reveal: the server seed is
// stripped, the hash commitment stays.
func (sp SeedPair) Public() SeedPair {
	sp.ServerSeed = ""
	return sp
}

// GenerateServerSeed returns 32 cryptographically random bytes, hex encoded.
func GenerateServerSeed() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failure means the process cannot produce fair outcomes.
		panic(fmt.Sprintf("fair: crypto/rand unavailable: %v", err))
	}
	return hex.EncodeToString(b)
}

// GenerateClientSeed returns a default client seed for players who did not
// choose one.
func GenerateClientSeed() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("fair: crypto/rand unavailable: %v", err))
	}
	return hex.EncodeToString(b)
}

// HashServerSeed is the published commitment: hex SHA-256 of the seed string.
func HashServerSeed(serverSeed string) string {
	h := sha256.Sum256([]byte(serverSeed))
	return hex.EncodeToString(h[:])
}

// Combine derives the round digest: HMAC-SHA256 keyed by the server seed over
// "clientSeed:nonce".
func Combine(sp SeedPair) [32]byte {
	mac := hmac.New(sha256.New, []byte(sp.ServerSeed))
	fmt.Fprintf(mac, "%s:%d", sp.ClientSeed, sp.Nonce)
	var digest [32]byte
	copy(digest[:], mac.Sum(nil))
	return digest
}
