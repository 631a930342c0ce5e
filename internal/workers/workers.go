package workers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	engineSync "plexconsole/internal/engine/sync"
)

// SyncReceiver accepts signed user-sync messages from the API server and
// runs the sync cycle for the named tenant.
type SyncReceiver struct {
	secret string
}

func NewSyncReceiver(secret string) *SyncReceiver {
	return &SyncReceiver{secret: secret}
}

func (s *SyncReceiver) Handle(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	signature := r.Header.Get("X-Sync-Signature")
	if !engineSync.Verify(s.secret, payload, signature) {
		http.Error(w, "invalid signature", http.StatusUnauthorized)
		return
	}

	var msg engineSync.Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		http.Error(w, "invalid message", http.StatusBadRequest)
		return
	}

	log.Info().
		Str("tenant_id", msg.TenantID).
		Str("provider_id", msg.ProviderID).
		Str("provider_type", msg.ProviderType).
		Str("delivery", msg.ID).
		Msg("User sync requested")

	go RunUserSync(&msg)

	w.WriteHeader(http.StatusAccepted)
}

// RunUserSync will pull users from the tenant's active identity provider.
// TODO: page through the provider's user listing API and upsert the results
// into the tenant database.
func RunUserSync(msg *engineSync.Message) {
	log.Info().
		Str("tenant_id", msg.TenantID).
		Str("provider_type", msg.ProviderType).
		Msg("User sync accepted, provider sync not implemented yet")
}
