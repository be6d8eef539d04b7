package dadd_test

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-dadd/dsp/dadd"
)

func ExamplePosition() {
	for _, n := range []int{8, 5} {
		rows := make([]string, n)
		for d := range rows {
			rows[d] = strconv.Itoa(dadd.Position(d, n))
		}
		fmt.Println(strings.Join(rows, " "))
	}
	// Output:
	// 0 4 2 6 1 5 3 7
	// 0 2 1 3 4
}

func ExampleTopDown() {
	// Four spectra with a tone drifting one bin per spectrum.
	const rows, bins = 4, 8
	data := make([]dadd.Accum, rows*bins)
	for r := 0; r < rows; r++ {
		data[r*bins+2+r] = 3
	}

	dadd.TopDown(rows, bins, data)

	row := dadd.Position(3, rows)
	fmt.Println(data[row*bins : (row+1)*bins])
	// Output:
	// [0 0 12 0 0 0 0 0]
}

func ExampleEngine() {
	eng := dadd.New()
	defer eng.Close()

	err := eng.Setup(dadd.Config{
		Spectra:      4,
		SpectrumBins: 8,
		TotalBins:    12,
		Threshold:    8,
		BandBins:     4,
		BadBandLimit: 10,
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	data := make([]dadd.Accum, 4*12)
	for r := 0; r < 4; r++ {
		data[r*12+1+r] = 3
	}

	eng.Execute(dadd.PolRightCircular, dadd.SlopePositive, data, dadd.HitSinkFunc(func(p dadd.Path) {
		fmt.Println(p)
	}))
	fmt.Println(eng.ReportBadBands(nil))
	// Output:
	// path: pol R, bin 1, drift 3, power 12
	// hits 1, bad bands 0, max path: pol R, bin 1, drift 3, power 12
}
