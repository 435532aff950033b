package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"diffimp/internal/domain"
	"diffimp/internal/render"
	"diffimp/internal/stackup"
	"diffimp/internal/standards"
)

const prompt = "diffimp> "

// Session is one interactive session. It is not safe for concurrent use.
type Session struct {
	stackup  domain.StackupService
	calc     domain.CalculationService
	geometry domain.GeometryInput

	styles render.Styles
	out    io.Writer
	log    *zap.Logger
}

// New returns a session editing the stackup held by st, starting from the
// given default geometry.
func New(
	st domain.StackupService,
	calc domain.CalculationService,
	geometry domain.GeometryInput,
	out io.Writer,
	log *zap.Logger,
) *Session {
	return &Session{
		stackup:  st,
		calc:     calc,
		geometry: geometry,
		styles:   render.DefaultStyles(),
		out:      out,
		log:      log,
	}
}

// Geometry returns the current geometry entries.
func (s *Session) Geometry() domain.GeometryInput { return s.geometry }

// Run reads commands from in until quit, EOF or ctx is done. Command errors
// are printed and the session continues; only read errors are returned.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, prompt)
		if !sc.Scan() {
			fmt.Fprintln(s.out)
			return sc.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if quit := s.Exec(ctx, line); quit {
			return nil
		}
	}
}

// Exec runs one command line and reports whether the session should end.
func (s *Session) Exec(ctx context.Context, line string) (quit bool) {
	name, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)

	var err error
	switch strings.ToLower(name) {
	case "quit", "exit":
		return true
	case "help", "?":
		fmt.Fprint(s.out, helpText)
	case "copper":
		err = s.copper(rest)
	case "show":
		fmt.Fprint(s.out, render.Stackup(s.styles, s.stackup.Stackup(), s.stackup.Selected()))
	case "layers":
		fmt.Fprint(s.out, render.SignalLayers(s.styles, s.stackup.SignalLayers(), s.stackup.Selected()))
	case "select":
		err = s.stackup.Select(rest)
	case "set":
		err = s.set(rest)
	case "geom":
		err = s.geom(rest)
	case "standard":
		err = s.standard(rest)
	case "standards":
		fmt.Fprint(s.out, render.Standards(s.styles, standards.All()))
	case "calc":
		s.calculate(ctx, rest)
	case "thickness":
		s.thickness(rest)
	case "export":
		err = s.withPath(rest, s.stackup.Export)
	case "import":
		err = s.withPath(rest, s.stackup.Import)
	case "load":
		err = s.withPath(rest, s.stackup.Load)
	default:
		err = fmt.Errorf("unknown command %q (try help)", name)
	}
	if err != nil {
		s.log.Debug("command failed", zap.String("line", line), zap.Error(err))
		fmt.Fprintln(s.out, s.styles.Error.Render("error:")+" "+err.Error())
	}
	return false
}

func (s *Session) copper(arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return &domain.InputValidationError{
			Field:  "Copper Layer Count",
			Reason: fmt.Sprintf("%q is not a whole number", arg),
		}
	}
	if err := s.stackup.Regenerate(n); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "generated %d-layer stackup; selected %s\n", n, s.stackup.Selected())
	return nil
}

// set takes the 1-based layer number shown by "show", a field and a value;
// the value is the rest of the line so names may contain spaces.
func (s *Session) set(args string) error {
	fields := strings.SplitN(args, " ", 3)
	if len(fields) < 2 {
		return fmt.Errorf("usage: set <layer #> <name|class|thickness|er> [value]")
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return &domain.InputValidationError{Field: "layer #", Reason: fmt.Sprintf("%q is not a number", fields[0])}
	}
	value := ""
	if len(fields) == 3 {
		value = strings.TrimSpace(fields[2])
	}
	return s.stackup.SetField(n-1, fields[1], value)
}

// geom prints the geometry, or sets entries given as key=value pairs.
// Entries are stored as typed and validated at calculation time.
func (s *Session) geom(args string) error {
	if args == "" {
		g := s.geometry
		fmt.Fprintf(s.out, "w=%s gap=%s s=%s target=%s tol=%s\n", g.W, g.Gap, g.S, g.Target, g.TolerancePct)
		return nil
	}
	next := s.geometry
	for _, kv := range strings.Fields(args) {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("geometry entries are key=value, got %q", kv)
		}
		switch strings.ToLower(k) {
		case "w":
			next.W = v
		case "gap":
			next.Gap = v
		case "s":
			next.S = v
		case "target", "z0":
			next.Target = v
		case "tol", "tolerance":
			next.TolerancePct = v
		default:
			return fmt.Errorf("unknown geometry key %q (want w, gap, s, target or tol)", k)
		}
	}
	s.geometry = next
	return nil
}

func (s *Session) standard(name string) error {
	std, ok := standards.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown standard %q (see standards)", name)
	}
	p := std.Preset()
	s.geometry.Target, s.geometry.TolerancePct = p.Target, p.TolerancePct
	fmt.Fprintf(s.out, "%s: target %s Ω ± %s%%\n", std.Interface, p.Target, p.TolerancePct)
	return nil
}

// calculate grades the selected layer, or the named one without changing
// the selection. A failure replaces the result with an error block.
func (s *Session) calculate(ctx context.Context, layer string) {
	if layer == "" {
		layer = s.stackup.Selected()
	}
	res, err := s.calc.Calculate(ctx, s.stackup.Stackup(), layer, s.geometry)
	if err != nil {
		fmt.Fprint(s.out, render.Error(s.styles, err))
		return
	}
	fmt.Fprint(s.out, render.Result(s.styles, res))
}

// thickness prints the stackup total, or sums the given entries the way an
// uncommitted edit would be totalled.
func (s *Session) thickness(args string) {
	total := s.stackup.TotalThickness()
	if args != "" {
		total = stackup.TotalThicknessText(strings.Fields(args))
	}
	fmt.Fprintf(s.out, "Total PCB Thickness: %.3f mm\n", total)
}

func (s *Session) withPath(path string, fn func(string) error) error {
	if path == "" {
		return fmt.Errorf("a file path is required")
	}
	if err := fn(path); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "ok: %s\n", path)
	return nil
}

const helpText = `commands:
  copper <n>                      regenerate a template stackup with n copper layers
  show                            print the stackup
  layers                          list signal layers (* = selected)
  select <layer name>             choose the layer to calculate
  set <#> <field> [value]         edit layer # (name, class, thickness, er)
  geom [w=.. gap=.. s=.. target=.. tol=..]
                                  show or set trace geometry
  standard <name>                 take target and tolerance from a standard
  standards                       list standard interface impedances
  calc [layer name]               calculate Zdiff
  thickness [values...]           total thickness of the stackup or of the values
  export|import|load <file.csv>   write, import into, or replace from a CSV file
  help                            this text
  quit                            leave
`
