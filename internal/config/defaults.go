package config

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Storage.DatabasePath == "" {
		cfg.Storage.DatabasePath = "/usr/local/var/susume/data/db/susume.db"
	}
	if cfg.Storage.BleveIndexPath == "" {
		cfg.Storage.BleveIndexPath = "/usr/local/var/susume/data/indices/jobs.bleve"
	}
	if cfg.Embedding.ModelPath == "" {
		cfg.Embedding.ModelPath = "/usr/local/var/susume/data/models/all-MiniLM-L6-v2.onnx"
	}
	if cfg.Embedding.Dimensions == 0 {
		cfg.Embedding.Dimensions = 384
	}
	if cfg.Embedding.MaxTokens == 0 {
		cfg.Embedding.MaxTokens = 64
	}
	if cfg.Embedding.CacheSize == 0 {
		cfg.Embedding.CacheSize = 10000
	}
	cfg.Matching.ApplyDefaults()
	if cfg.Advisor.Model == "" {
		cfg.Advisor.Model = "gemini-2.5-flash"
	}
	if cfg.Advisor.APIKeyEnv == "" {
		cfg.Advisor.APIKeyEnv = "GEMINI_API_KEY"
	}
	if cfg.Ingest.Extensions == nil {
		cfg.Ingest.Extensions = []string{".json", ".xlsx"}
	}
}
