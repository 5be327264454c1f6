package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/lukaszgryglicki/ratcomplex"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// batchFile is the YAML input of the batch command.
type batchFile struct {
	Cases []batchCase `yaml:"cases"`
}

type batchCase struct {
	Name string `yaml:"name,omitempty"`
	LHS  string `yaml:"lhs"`
	Op   string `yaml:"op"`
	RHS  string `yaml:"rhs"`
	// Want is optional; when present the result must equal it exactly.
	Want *ratcomplex.Complex `yaml:"want,omitempty"`
}

type batchResult struct {
	Name    string              `yaml:"name,omitempty"`
	Expr    string              `yaml:"expr"`
	Result  *ratcomplex.Complex `yaml:"result,omitempty"`
	Display string              `yaml:"display,omitempty"`
	Match   *bool               `yaml:"match,omitempty"`
	Error   string              `yaml:"error,omitempty"`
}

type batchReport struct {
	Results []batchResult       `yaml:"results"`
	Sum     *ratcomplex.Complex `yaml:"sum,omitempty"`
	Failed  int                 `yaml:"failed"`
}

func newBatchCmd(o *options) *cobra.Command {
	var (
		file string
		jobs int
		sum  bool
	)
	cmd := &cobra.Command{
		Use:   "batch -f <cases.yaml>",
		Short: "Evaluate a YAML file of expressions",
		Long: `Batch reads a YAML document of cases and writes a YAML report to stdout.

Input:
  cases:
    - name: division
      lhs: 1/3-1/4j
      op: /
      rhs: -1/2j
      want: 1/2+2/3j

Cases run concurrently. The command fails if any case errors or misses its want.
Use "-f -" to read from stdin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readBatch(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}
			start := time.Now()
			rep, err := o.runBatch(cmd.Context(), in, jobs, sum)
			if err != nil {
				return err
			}
			o.log.Info("batch done", "cases", len(in.Cases), "failed", rep.Failed, "elapsed", time.Since(start))

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(rep); err != nil {
				return err
			}
			if err := enc.Close(); err != nil {
				return err
			}
			if rep.Failed > 0 {
				return fmt.Errorf("%d of %d cases failed", rep.Failed, len(in.Cases))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file with cases (- for stdin)")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.GOMAXPROCS(0), "number of cases evaluated concurrently")
	cmd.Flags().BoolVar(&sum, "sum", false, "also report the sum of all results")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func readBatch(stdin io.Reader, file string) (*batchFile, error) {
	var (
		data []byte
		err  error
	)
	if file == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, err
	}
	var in batchFile
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("parse %s: %w", file, err)
	}
	return &in, nil
}

// runBatch evaluates every case with at most jobs running at once. Per-case failures
// are recorded in the report; only cancellation aborts the run.
func (o *options) runBatch(ctx context.Context, in *batchFile, jobs int, sum bool) (*batchReport, error) {
	if jobs < 1 {
		jobs = 1
	}
	results := make([]batchResult, len(in.Cases))
	acc := ratcomplex.NewAccumulator(nil)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, c := range in.Cases {
		i, c := i, c
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = o.runCase(c)
			if sum && results[i].Result != nil {
				return acc.Add(results[i].Result)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rep := &batchReport{Results: results}
	for _, r := range results {
		if r.Error != "" || (r.Match != nil && !*r.Match) {
			rep.Failed++
		}
	}
	if sum {
		rep.Sum = acc.Value()
	}
	return rep, nil
}

func (o *options) runCase(c batchCase) batchResult {
	res := batchResult{Name: c.Name, Expr: c.LHS + " " + c.Op + " " + c.RHS}
	z, err := o.evaluate(c.LHS, c.Op, c.RHS)
	if err != nil {
		o.log.Warn("case failed", "name", c.Name, "expr", res.Expr, "err", err)
		res.Error = err.Error()
		return res
	}
	res.Result = z
	res.Display = o.render(z)
	if c.Want != nil {
		ok := z.Equal(c.Want)
		res.Match = &ok
		if !ok {
			o.log.Warn("case mismatch", "name", c.Name, "got", z.Text(), "want", c.Want.Text())
		}
	}
	return res
}
