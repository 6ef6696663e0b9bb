package main

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"os"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/nnfs/nn"
)

// runDemo builds a small classifier, runs one forward/backward pass on a
// synthetic batch and logs the resulting loss terms and gradient norms.
func runDemo(args []string) error {
	cfg, err := parseDemoFlags(args)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	var opts []nn.LinearOption
	if cfg.l2 > 0 {
		opts = append(opts, nn.WithWeightsRegularizer(nn.L2(cfg.l2)))
	}
	model := nn.NewSequential(
		nn.NewLinear(cfg.inputs, cfg.hidden, opts...),
		nn.NewReLU(),
		nn.NewLinear(cfg.hidden, cfg.classes, opts...),
		nn.NewSoftmax(),
	)

	rng := rand.New(rand.NewPCG(cfg.seed, cfg.seed))
	x, labels := syntheticBatch(rng, cfg)

	probs, err := model.Forward(x)
	if err != nil {
		return fmt.Errorf("forward: %w", err)
	}

	dataLoss, gradOut := nllLoss(probs, labels)
	penalty := model.Loss()
	logger.Info("forward",
		"batch", cfg.batch,
		"data_loss", dataLoss,
		"penalty", penalty,
		"total_loss", dataLoss+penalty,
	)

	if _, err := model.Backward(gradOut); err != nil {
		return fmt.Errorf("backward: %w", err)
	}

	for i, p := range model.Parameters() {
		rows, cols := p.Shape()
		logger.Info("gradient",
			"index", i,
			"name", p.Name(),
			"shape", fmt.Sprintf("%dx%d", rows, cols),
			"norm", floats.Norm(mat.DenseCopyOf(p.Grad()).RawMatrix().Data, 2),
		)
	}
	return nil
}

// syntheticBatch draws N(0, 1) features and labels each row with the
// index of its largest feature, folded into the class count.
func syntheticBatch(rng *rand.Rand, cfg demoConfig) (*mat.Dense, []int) {
	x := mat.NewDense(cfg.batch, cfg.inputs, nil)
	labels := make([]int, cfg.batch)
	for i := range cfg.batch {
		row := x.RawRowView(i)
		for j := range row {
			row[j] = rng.NormFloat64()
		}
		labels[i] = floats.MaxIdx(row) % cfg.classes
	}
	return x, labels
}

// nllLoss returns the mean negative log-likelihood of labels under probs
// and its gradient with respect to probs.
func nllLoss(probs *mat.Dense, labels []int) (float64, *mat.Dense) {
	const eps = 1e-12
	rows, cols := probs.Dims()
	grad := mat.NewDense(rows, cols, nil)
	var loss float64
	for i, y := range labels {
		p := math.Max(probs.At(i, y), eps)
		loss -= math.Log(p)
		grad.Set(i, y, -1/(p*float64(rows)))
	}
	return loss / float64(rows), grad
}
