package launch

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/sabouaram/daemonconnector/errcode"
)

// exeSuffix mirrors the OS-specific executable suffix spec.md §4.5/§6.3
// calls for.
func exeSuffix() string {
	if runtime.GOOS == "windows" {
		return ".exe"
	}
	return ""
}

// locateArtifact returns the first file in dir (in filename order) whose
// name starts with prefix; further matches are ignored. Missing artifacts
// are a fatal startup error (spec.md §4.5).
func locateArtifact(dir, prefix string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", errcode.IllegalConfiguration(fmt.Errorf("reading library directory %q: %w", dir, err))
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasPrefix(e.Name(), prefix) {
			return filepath.Join(dir, e.Name()), nil
		}
	}

	return "", errcode.IllegalConfiguration(fmt.Errorf("no artifact with prefix %q found in %q", prefix, dir))
}

// executablePath derives the java-like executable path from RuntimeHome,
// using the OS-specific path separator and suffix (spec.md §4.5).
func executablePath(runtimeHome string) string {
	return filepath.Join(runtimeHome, "bin", "java"+exeSuffix())
}

// assembleArgs builds the arguments that follow the runtime executable in
// the positional order spec.md §6.3 specifies. The executable itself is not
// part of the result; Start resolves it with executablePath and hands it to
// exec separately:
//
//	-classpath <common><sep><agent> -javaagent:<agent>
//	[debug_opt] [user_jvm_args...] [per-project_jvm_args...]
//	[-Xms...] [-Xmx...] <mandatory_daemon_options...>
//	<discriminating_options...> <entry_point_class>
func assembleArgs(id string, opts Options) ([]string, error) {
	common, err := locateArtifact(opts.LibDir, "common")
	if err != nil {
		return nil, err
	}

	agent, err := locateArtifact(opts.LibDir, "agent")
	if err != nil {
		return nil, err
	}

	args := make([]string, 0, 24)

	classpath := common + string(os.PathListSeparator) + agent
	args = append(args, "-classpath", classpath)
	args = append(args, "-javaagent:"+agent)

	if opts.DebugOpt != "" {
		args = append(args, opts.DebugOpt)
	}

	args = append(args, opts.JVMArgs...)
	args = append(args, opts.PerProjectJVMArgs...)

	if opts.MinHeap != "" {
		args = append(args, "-Xms"+opts.MinHeap)
	}
	if opts.MaxHeap != "" {
		args = append(args, "-Xmx"+opts.MaxHeap)
	}

	args = append(args,
		"-Ddaemon.runtime.home="+opts.RuntimeHome,
		"-Ddaemon.jre.home="+opts.JREHome,
		"-Ddaemon.logging.config="+opts.LoggingConfigPath,
		"-Ddaemon.id="+id,
		"-Ddaemon.storage="+opts.StorageDir,
		"-Ddaemon.registry="+opts.RegistryPath,
	)

	keys := make([]string, 0, len(opts.DiscriminatingOptions))
	for k := range opts.DiscriminatingOptions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		args = append(args, fmt.Sprintf("-D%s=%s", k, opts.DiscriminatingOptions[k]))
	}

	args = append(args, opts.EntryPointClass)

	return args, nil
}

// LogFilePath is where stdout/stderr of the spawned daemon are appended
// (spec.md §6.3).
func LogFilePath(storageDir, id string) string {
	return filepath.Join(storageDir, fmt.Sprintf("daemon-%s.out.log", id))
}
