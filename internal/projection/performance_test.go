package projection

import (
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
)

// TestPerformance sweeps the calibrated parcel range in both IRR modes.
func TestPerformance(t *testing.T) {
	if !testing.Verbose() {
		t.Skip("Skipping performance test. Run with -v to enable.")
	}

	calc := newTestCalculator(t)
	in := defaultInput()

	start := time.Now()
	runs := 0
	for parcels := 1; parcels <= 1000; parcels++ {
		in.ParcelCount = parcels
		for _, mode := range []IRRMode{IRRModeLegacy, IRRModeSolved} {
			if _, err := calc.Calculate(in, mode); err != nil {
				t.Fatalf("Calculate(%d, %s) error = %v", parcels, mode, err)
			}
			runs++
		}
	}
	elapsed := time.Since(start)

	t.Logf("Performance metrics:")
	t.Logf("  Projections: %d", runs)
	t.Logf("  Total time: %v", elapsed)
	t.Logf("  Per projection: %v", elapsed/time.Duration(runs))

	if elapsed > 10*time.Second {
		t.Errorf("Total processing time %v exceeds 10 second threshold", elapsed)
	}
}

// TestConcurrentCalculate checks that a shared Calculator gives identical
// results across goroutines.
func TestConcurrentCalculate(t *testing.T) {
	calc := newTestCalculator(t)
	want, err := calc.Calculate(defaultInput(), IRRModeSolved)
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := calc.Calculate(defaultInput(), IRRModeSolved)
			if err != nil {
				errs <- err.Error()
				return
			}
			if got.NetPresentValueMillions != want.NetPresentValueMillions ||
				got.InternalRateOfReturnPercent != want.InternalRateOfReturnPercent {
				errs <- "result differs between goroutines"
			}
		}()
	}
	wg.Wait()
	close(errs)
	for msg := range errs {
		t.Error(msg)
	}
}

func BenchmarkCalculateLegacy(b *testing.B) {
	calc, err := NewCalculator(zap.NewNop(), DefaultParams())
	if err != nil {
		b.Fatal(err)
	}
	in := defaultInput()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := calc.Calculate(in, IRRModeLegacy); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCalculateSolved(b *testing.B) {
	calc, err := NewCalculator(zap.NewNop(), DefaultParams())
	if err != nil {
		b.Fatal(err)
	}
	in := defaultInput()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := calc.Calculate(in, IRRModeSolved); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSchedule(b *testing.B) {
	calc, err := NewCalculator(zap.NewNop(), DefaultParams())
	if err != nil {
		b.Fatal(err)
	}
	in := defaultInput()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := calc.Schedule(in); err != nil {
			b.Fatal(err)
		}
	}
}
