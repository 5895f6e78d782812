package train_test

import (
	"context"
	"fmt"

	"github.com/born-ml/bpnet/internal/nn"
	"github.com/born-ml/bpnet/internal/train"
)

func ExampleTrainer() {
	scenario, err := train.ScenarioByName[float64]("linear")
	if err != nil {
		panic(err)
	}
	net, err := nn.New(nn.Config[float64]{Widths: scenario.Widths, LearningRate: scenario.LearningRate})
	if err != nil {
		panic(err)
	}
	rng := newRNG(42)
	net.Randomize(rng, 0, 1)

	trainer, err := train.NewTrainer(net, scenario.Oracle, scenario.Sampler(), rng, train.Config{})
	if err != nil {
		panic(err)
	}
	if err := trainer.Run(context.Background(), 1000); err != nil {
		panic(err)
	}
	report := trainer.Evaluate(100)
	fmt.Println(trainer.Trained(), report.Samples)

	// Output:
	// 1000 100
}
