package benchdiff

import (
	"context"
	"fmt"
	"reflect"
	"testing"
)

func syntheticDatasets(n int) (*Dataset, *Dataset) {
	headers := []string{"Method", "N", "Mean", "Allocated", "Op/s"}
	var oldRows, newRows [][]string
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("Case%03d", i)
		oldRows = append(oldRows, []string{
			name, fmt.Sprintf("%d", i%7),
			fmt.Sprintf("%d ns", 100+i), fmt.Sprintf("%d", 1000+i), fmt.Sprintf("%d", 5000-i),
		})
		// Every third case regresses on time, every fifth on throughput.
		mean := 100 + i
		if i%3 == 0 {
			mean = mean * 2
		}
		ops := 5000 - i
		if i%5 == 0 {
			ops = ops / 2
		}
		newRows = append(newRows, []string{
			name, fmt.Sprintf("%d", i%7),
			fmt.Sprintf("%d ns", mean), fmt.Sprintf("%d", 1000+i), fmt.Sprintf("%d", ops),
		})
	}
	return dataset(headers, oldRows...), dataset(headers, newRows...)
}

func TestCompareParallelMatchesSequential(t *testing.T) {
	baseline, candidate := syntheticDatasets(60)
	opts := DefaultOptions()

	seq, err := Compare(baseline, candidate, opts)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	for _, workers := range []int{0, 1, 4} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			par, err := CompareParallel(context.Background(), baseline, candidate, opts, workers)
			if err != nil {
				t.Fatalf("CompareParallel() error = %v", err)
			}
			if !reflect.DeepEqual(seq.Rows, par.Rows) {
				t.Error("parallel rows differ from sequential rows")
			}
			if !reflect.DeepEqual(seq.Regressions, par.Regressions) {
				t.Errorf("parallel regressions differ: sequential %d, parallel %d",
					len(seq.Regressions), len(par.Regressions))
			}
		})
	}
}

func TestCompareParallelCancellation(t *testing.T) {
	baseline, candidate := syntheticDatasets(200)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := CompareParallel(ctx, baseline, candidate, DefaultOptions(), 2)
	if err == nil {
		t.Fatal("CompareParallel() with cancelled context should fail")
	}
}

func TestCompareParallelResolutionError(t *testing.T) {
	d := dataset([]string{"Mean"}, []string{"1"})
	_, err := CompareParallel(context.Background(), d, d, Options{}, 2)
	if err == nil {
		t.Fatal("CompareParallel() should surface resolution errors")
	}
}
