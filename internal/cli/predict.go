package cli

import (
	"github.com/posener/complete"

	"github.com/kcpwd/kcpwd/internal/config"
	"github.com/kcpwd/kcpwd/internal/secrets"
)

// KeyPredictor completes stored key names for get/delete/set.
// Best effort: any store error yields no completions.
func KeyPredictor() complete.Predictor {
	return complete.PredictFunc(func(complete.Args) []string {
		cfg, err := config.Load()
		if err != nil {
			return nil
		}

		store, err := secrets.NewStore(cfg.ServiceName())
		if err != nil {
			return nil
		}

		keys, err := store.List()
		if err != nil {
			return nil
		}
		return keys
	})
}
