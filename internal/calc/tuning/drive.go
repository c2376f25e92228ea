package tuning

import "fmt"

// StockDrive is the drive-train as the car leaves the factory, before a swap.
type StockDrive string

const (
	StockRWD StockDrive = "rwd"
	StockAWD StockDrive = "awd"
	StockFWD StockDrive = "fwd"
)

type DriveOption struct {
	Value StockDrive `json:"value"`
	Label string     `json:"label"`
}

var driveOptions = []DriveOption{
	{Value: StockRWD, Label: "Rear"},
	{Value: StockAWD, Label: "4WD"},
	{Value: StockFWD, Label: "Front"},
}

func (d StockDrive) Valid() bool {
	for _, o := range driveOptions {
		if o.Value == d {
			return true
		}
	}
	return false
}

// DriveOptions lists every selectable drive-train.
func DriveOptions() []DriveOption {
	out := make([]DriveOption, len(driveOptions))
	copy(out, driveOptions)
	return out
}

// SwapOptions lists the drive-trains a car with the given stock drive can be
// converted to.
func SwapOptions(stock StockDrive) []DriveOption {
	out := make([]DriveOption, 0, len(driveOptions)-1)
	for _, o := range driveOptions {
		if o.Value != stock {
			out = append(out, o)
		}
	}
	return out
}

// ResolveDrive turns the stock selection and an optional swap into the
// effective drive type used by the ARB balancer.
func ResolveDrive(stock StockDrive, swapped bool, target StockDrive) (Drive, error) {
	if !stock.Valid() {
		return "", fmt.Errorf("unknown drive type %q", stock)
	}
	if !swapped {
		if stock == StockAWD {
			return DriveAWDStock, nil
		}
		return Drive(stock), nil
	}
	if !target.Valid() {
		return "", fmt.Errorf("unknown swap drive type %q", target)
	}
	if target == stock {
		return "", fmt.Errorf("swap drive must differ from stock drive")
	}
	if target == StockAWD {
		return DriveAWDSwapped, nil
	}
	return Drive(target), nil
}
