package lineinfile

import (
	"embed"
	"io/fs"

	"github.com/arthur-debert/lineinfile/pkg/cobrax/topics"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicsFS embed.FS

// initTopics installs "help <topic>" backed by the embedded markdown topics.
func initTopics(rootCmd *cobra.Command) {
	source, err := fs.Sub(topicsFS, "topics")
	if err == nil {
		_, err = topics.Initialize(rootCmd, source, topics.Options{
			Extensions: []string{".md"},
			Renderer:   topics.NewGlamourRenderer(),
		})
	}
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
}
