// Package commands defines the diffimp CLI and wires dependencies for subcommands.
//
// Commands
//
//   - generate     Build a template stackup for a copper layer count
//   - show         Print a stackup CSV as a table
//   - layers       List the signal layers of a stackup
//   - set          Edit one layer field in a stackup CSV
//   - import       Copy layer values from another CSV of the same size
//   - calc         Calculate and grade differential impedance
//   - fingerprint  Print the stackup digest
//   - standards    List standard interface impedances
//   - config       Print or write the effective configuration
//   - shell        Interactive editing and calculation session
//
// # Implementation
//
// The root command loads the YAML config, builds the zap logger and the
// dependency graph (CSV store, stackup and calculation services) before any
// subcommand runs, so handlers share one app context. show and fingerprint
// read --stackup straight from the store. The other subcommands that take
// --stackup load that file into the session first; otherwise they work on a
// template of the configured default copper count.
package commands
