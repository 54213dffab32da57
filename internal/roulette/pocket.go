package roulette

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// MaxNumber Максимальный номер на колесе
	MaxNumber = 36
	// PocketCount Количество ячеек американской рулетки (0-36 и 00)
	PocketCount = 38

	doubleZeroIndex = 37
	doubleZeroLabel = "00"
)

var ErrInvalidPocket = errors.New("pocket must be a number from 0 to 36 or \"00\"")

// Kind Вид ячейки
type Kind uint8

const (
	// KindUnknown нулевое значение, ячейка не классифицируется
	KindUnknown Kind = iota
	KindNumber
	KindDoubleZero
)

// Pocket Результат одного спина: номер 0-36 либо "00".
// Нулевое значение Pocket{} - неизвестная ячейка, она исключается из всех подсчетов.
type Pocket struct {
	kind   Kind
	number int
}

// DoubleZero ячейка "00"
var DoubleZero = Pocket{kind: KindDoubleZero}

// NewNumber создает числовую ячейку, проверяя диапазон
func NewNumber(n int) (Pocket, error) {
	if n < 0 || n > MaxNumber {
		return Pocket{}, fmt.Errorf("%w: got %d", ErrInvalidPocket, n)
	}
	return Pocket{kind: KindNumber, number: n}, nil
}

// MustNumber как NewNumber, но паникует на неверном номере. Только для констант и тестов.
func MustNumber(n int) Pocket {
	p, err := NewNumber(n)
	if err != nil {
		panic(err)
	}
	return p
}

// Parse разбирает ввод оператора: "0".."36" или "00"
func Parse(s string) (Pocket, error) {
	s = strings.TrimSpace(s)
	if s == doubleZeroLabel {
		return DoubleZero, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Pocket{}, fmt.Errorf("%w: got %q", ErrInvalidPocket, s)
	}
	return NewNumber(n)
}

// All возвращает все 38 ячеек в порядке таблицы: 0..36, затем 00
func All() []Pocket {
	pockets := make([]Pocket, 0, PocketCount)
	for n := 0; n <= MaxNumber; n++ {
		pockets = append(pockets, Pocket{kind: KindNumber, number: n})
	}
	return append(pockets, DoubleZero)
}

// FromIndex обратное к Index
func FromIndex(i int) (Pocket, bool) {
	switch {
	case i >= 0 && i <= MaxNumber:
		return Pocket{kind: KindNumber, number: i}, true
	case i == doubleZeroIndex:
		return DoubleZero, true
	}
	return Pocket{}, false
}

func (p Pocket) Kind() Kind {
	return p.kind
}

// Valid false только для неизвестной ячейки
func (p Pocket) Valid() bool {
	switch p.kind {
	case KindNumber:
		return p.number >= 0 && p.number <= MaxNumber
	case KindDoubleZero:
		return true
	}
	return false
}

// Number возвращает номер для числовой ячейки
func (p Pocket) Number() (int, bool) {
	if p.kind != KindNumber || !p.Valid() {
		return 0, false
	}
	return p.number, true
}

// IsGreen 0 или 00
func (p Pocket) IsGreen() bool {
	return p.kind == KindDoubleZero || (p.kind == KindNumber && p.number == 0)
}

// Index позиция в таблице частот (0..37), -1 для неизвестной ячейки
func (p Pocket) Index() int {
	if !p.Valid() {
		return -1
	}
	if p.kind == KindDoubleZero {
		return doubleZeroIndex
	}
	return p.number
}

func (p Pocket) String() string {
	switch {
	case !p.Valid():
		return "?"
	case p.kind == KindDoubleZero:
		return doubleZeroLabel
	}
	return strconv.Itoa(p.number)
}

// MarshalJSON число для 0-36 и строка "00", как в сохраненных записях
func (p Pocket) MarshalJSON() ([]byte, error) {
	switch {
	case !p.Valid():
		return nil, ErrInvalidPocket
	case p.kind == KindDoubleZero:
		return json.Marshal(doubleZeroLabel)
	}
	return json.Marshal(p.number)
}

// UnmarshalJSON принимает число или строку ("00", "17")
func (p *Pocket) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		parsed, err := NewNumber(n)
		if err != nil {
			return err
		}
		*p = parsed
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: got %s", ErrInvalidPocket, string(data))
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
