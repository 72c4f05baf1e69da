package installer

import (
	"fmt"
	"os"
	"os/exec"
	"sort"
	"time"

	"github.com/figgo/figgo/core/config"
	"github.com/figgo/figgo/core/logger"
	"github.com/schollz/progressbar/v3"
)

// BaselinePackages are installed alongside whatever the analyzer found:
// the icon set plus both motion entry points the export templates use.
var BaselinePackages = []string{"lucide-react", "framer-motion", "motion"}

// TailwindPackages make up the Tailwind v4 toolchain step.
var TailwindPackages = []string{"tailwindcss", "@tailwindcss/vite", "tw-animate-css"}

// Installer runs the package manager inside the generated project.
type Installer struct {
	dir     string
	command string
}

func New(dir string, cfg *config.Config) *Installer {
	command := cfg.Installer.Command
	if command == "" {
		command = "npm"
	}
	return &Installer{
		dir:     dir,
		command: command,
	}
}

// InstallBase installs the template's own dependencies.
func (i *Installer) InstallBase() error {
	return i.run("Running "+i.command+" install...", "install")
}

// InstallTailwind installs the Tailwind v4 toolchain.
func (i *Installer) InstallTailwind() error {
	args := append([]string{"install"}, TailwindPackages...)
	return i.run("Installing Tailwind CSS v4...", args...)
}

// InstallPackages installs the detected packages merged with the
// baseline set, deduplicated and sorted.
func (i *Installer) InstallPackages(packages []string) error {
	merged := make(map[string]struct{}, len(packages)+len(BaselinePackages))
	for _, pkg := range BaselinePackages {
		merged[pkg] = struct{}{}
	}
	for _, pkg := range packages {
		merged[pkg] = struct{}{}
	}

	all := make([]string, 0, len(merged))
	for pkg := range merged {
		all = append(all, pkg)
	}
	sort.Strings(all)

	args := append([]string{"install"}, all...)
	args = append(args, "--no-fund", "--no-audit")
	return i.run(fmt.Sprintf("Installing %d dependencies...", len(all)), args...)
}

// run executes the package manager with a spinner while it works.
func (i *Installer) run(description string, args ...string) error {
	logger.Debug("Running %s %v in %s", i.command, args, i.dir)

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				bar.Add(1)
			}
		}
	}()

	cmd := exec.Command(i.command, args...)
	cmd.Dir = i.dir
	cmd.Env = os.Environ()
	output, err := cmd.CombinedOutput()

	close(done)
	bar.Finish()

	if err != nil {
		logger.Debug("%s output:\n%s", i.command, string(output))
		return fmt.Errorf("%s %s failed: %w", i.command, args[0], err)
	}

	return nil
}
