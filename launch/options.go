package launch

// Options configures one daemon spawn. Every field maps onto a piece of the
// command-line shape spec.md §6.3 mandates.
type Options struct {
	// RuntimeHome is the JVM installation the executable is resolved from.
	RuntimeHome string

	// JREHome is the effective JRE home reported to the daemon via the
	// mandatory daemon options.
	JREHome string

	// LibDir holds the "common" and "agent" artifact files, located by
	// filename prefix (spec.md §4.5).
	LibDir string

	StorageDir        string
	RegistryPath      string
	LoggingConfigPath string
	EntryPointClass   string

	// DebugOpt, if non-empty, is inserted verbatim as the optional
	// remote-debug JVM option.
	DebugOpt string

	// JVMArgs are free-form args read from configuration.
	JVMArgs []string

	// PerProjectJVMArgs are additional args read from a per-project config
	// file, if one was present (spec.md §4.5).
	PerProjectJVMArgs []string

	MinHeap string // rendered as -Xms<value> if non-empty
	MaxHeap string // rendered as -Xmx<value> if non-empty

	// DiscriminatingOptions are daemon options whose value must match
	// exactly for a later client to consider this daemon compatible
	// (spec.md §4.5). Rendered as -D<key>=<value>, sorted by key so the
	// assembled command line is deterministic.
	DiscriminatingOptions map[string]string
}
