package ghcli

// Upstream locations for the GitHub CLI apt distribution.
const (
	// KeyringURL is the signing key for the GitHub CLI apt repository.
	KeyringURL = "https://cli.github.com/packages/githubcli-archive-keyring.gpg"

	// KeyringPath is where the signing key is installed.
	KeyringPath = "/usr/share/keyrings/githubcli-archive-keyring.gpg"

	// SourcesPath is the apt sources list entry for the repository.
	SourcesPath = "/etc/apt/sources.list.d/github-cli.list"

	// SourcesEntry is the repository line written to SourcesPath.
	SourcesEntry = "deb [arch=amd64 signed-by=" + KeyringPath + "] https://cli.github.com/packages stable main\n"
)

// Config represents the github-cli section of the manifest.
type Config struct {
	Install bool
}

// ParseConfig parses the github-cli configuration from a raw map.
func ParseConfig(raw map[string]interface{}) (*Config, error) {
	cfg := &Config{Install: true}

	if install, ok := raw["install"].(bool); ok {
		cfg.Install = install
	}

	return cfg, nil
}
