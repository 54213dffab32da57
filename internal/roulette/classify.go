package roulette

// Цвет ячейки
type Color uint8

const (
	Green Color = iota
	Red
	Black
)

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Black:
		return "black"
	}
	return "green"
}

type Parity uint8

const (
	Even Parity = iota
	Odd
)

func (p Parity) String() string {
	if p == Even {
		return "even"
	}
	return "odd"
}

// Half Половина поля: 1-18 или 19-36
type Half uint8

const (
	Low Half = iota
	High
)

func (h Half) String() string {
	if h == Low {
		return "1-18"
	}
	return "19-36"
}

type Dozen uint8

const (
	FirstDozen Dozen = iota
	SecondDozen
	ThirdDozen
)

func (d Dozen) String() string {
	switch d {
	case FirstDozen:
		return "first (1-12)"
	case SecondDozen:
		return "second (13-24)"
	}
	return "third (25-36)"
}

type Column uint8

const (
	FirstColumn Column = iota
	SecondColumn
	ThirdColumn
)

func (c Column) String() string {
	switch c {
	case FirstColumn:
		return "first column"
	case SecondColumn:
		return "second column"
	}
	return "third column"
}

// redNumbers Красные номера колеса
var redNumbers = [MaxNumber + 1]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
	14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
	25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

// ColorOf 0 и 00 зеленые, остальные по таблице красных номеров
func ColorOf(p Pocket) (Color, bool) {
	switch p.kind {
	case KindDoubleZero:
		return Green, true
	case KindNumber:
		if !p.Valid() {
			return Green, false
		}
		if p.number == 0 {
			return Green, true
		}
		if redNumbers[p.number] {
			return Red, true
		}
		return Black, true
	}
	return Green, false
}

// outsideNumber номер 1-36, для которого определены внешние ставки
func outsideNumber(p Pocket) (int, bool) {
	n, ok := p.Number()
	if !ok || n == 0 {
		return 0, false
	}
	return n, true
}

func ParityOf(p Pocket) (Parity, bool) {
	n, ok := outsideNumber(p)
	if !ok {
		return Even, false
	}
	if n%2 == 0 {
		return Even, true
	}
	return Odd, true
}

func HalfOf(p Pocket) (Half, bool) {
	n, ok := outsideNumber(p)
	if !ok {
		return Low, false
	}
	if n <= 18 {
		return Low, true
	}
	return High, true
}

func DozenOf(p Pocket) (Dozen, bool) {
	n, ok := outsideNumber(p)
	if !ok {
		return FirstDozen, false
	}
	return Dozen((n - 1) / 12), true
}

// ColumnOf n mod 3 == 1 первая, == 2 вторая, == 0 третья
func ColumnOf(p Pocket) (Column, bool) {
	n, ok := outsideNumber(p)
	if !ok {
		return FirstColumn, false
	}
	switch n % 3 {
	case 1:
		return FirstColumn, true
	case 2:
		return SecondColumn, true
	}
	return ThirdColumn, true
}
