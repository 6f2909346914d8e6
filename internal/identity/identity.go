package identity

const (
	BrandName = "Dragbox"
	// AppSlug names on-disk state and matches the CLI binary.
	AppSlug = "dragbox"
	CLIName = "dragbox"

	SceneFileYML  = "scene.yml"
	SceneFileYAML = "scene.yaml"
	SceneFileTOML = "scene.toml"

	LogFile = "dragbox.log"
)

// SceneFiles lists the scene file names looked up in the config dir, in
// priority order.
var SceneFiles = []string{SceneFileYML, SceneFileYAML, SceneFileTOML}
