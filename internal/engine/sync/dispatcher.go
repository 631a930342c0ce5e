package sync

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// Message asks the worker to pull users from a tenant's active identity
// provider. Dispatched after every successful config save when the provider
// type supports syncing.
type Message struct {
	ID           string `json:"id"`
	TenantID     string `json:"tenant_id"`
	ProviderID   string `json:"provider_id"`
	ProviderType string `json:"provider_type"`
	Timestamp    int64  `json:"timestamp"`
}

// Dispatcher posts signed sync messages to the worker endpoint. Delivery is
// fire and forget; a failed trigger only costs one sync cycle.
type Dispatcher struct {
	workerURL string
	secret    string
	client    *http.Client
}

func NewDispatcher(workerURL, secret string) *Dispatcher {
	return &Dispatcher{
		workerURL: workerURL,
		secret:    secret,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Dispatch delivers a sync message in the background.
func (d *Dispatcher) Dispatch(tenantID, providerID, providerType string) {
	if d.workerURL == "" {
		return
	}
	msg := &Message{
		ID:           fmt.Sprintf("sync_%d", time.Now().UnixNano()),
		TenantID:     tenantID,
		ProviderID:   providerID,
		ProviderType: providerType,
		Timestamp:    time.Now().Unix(),
	}
	go d.deliver(msg)
}

func (d *Dispatcher) deliver(msg *Message) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}

	req, err := http.NewRequest("POST", d.workerURL, bytes.NewBuffer(payload))
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Sync-Signature", Sign(d.secret, payload))
	req.Header.Set("X-Sync-Delivery", msg.ID)

	resp, err := d.client.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("tenant_id", msg.TenantID).Msg("Sync trigger delivery failed")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		log.Warn().
			Int("status", resp.StatusCode).
			Str("tenant_id", msg.TenantID).
			Msg("Sync trigger rejected by worker")
		return
	}
	log.Debug().Str("tenant_id", msg.TenantID).Str("delivery", msg.ID).Msg("Sync triggered")
}
