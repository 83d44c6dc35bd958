package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
	supa "github.com/supabase-community/supabase-go"
)

// NewSupabaseClient initializes a Supabase client with the service key.
func NewSupabaseClient(cfg *Config, log *logrus.Logger) (*supa.Client, error) {
	client, err := supa.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, nil)
	if err != nil {
		return nil, fmt.Errorf("initializing supabase client: %w", err)
	}
	log.WithField("url", cfg.SupabaseURL).Info("Supabase client initialized")
	return client, nil
}
