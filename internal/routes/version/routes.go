package version

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/flippy-bot/internal/search"
)

type VersionResponse struct {
	Commit       string `json:"commit"`
	GoVersion    string `json:"go_version"`
	DefaultDepth int    `json:"default_depth"`
}

var Version VersionResponse

func init() {
	Version.GoVersion = runtime.Version()
	Version.DefaultDepth = search.DefaultDepth

	output, err := exec.Command("git", "rev-parse", "HEAD").Output()
	if err != nil {
		Version.Commit = "unknown"
		return
	}
	Version.Commit = strings.TrimSpace(string(output))
}

func SetupRoutes(app *fiber.App) {
	versionGroup := app.Group("/version")
	versionGroup.Get("/", versionHandler)
}

func versionHandler(c *fiber.Ctx) error {
	return c.JSON(Version)
}
