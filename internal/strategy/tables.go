package strategy

// tableEntry is one cell of a basic-strategy table. The conditional entries
// resolve against the hand's side-rule eligibility at lookup time.
type tableEntry int

const (
	hh tableEntry = iota // hit
	ss                   // stand
	pp                   // split
	dh                   // double if allowed, else hit
	ds                   // double if allowed, else stand
	rh                   // surrender if allowed, else stand
)

// hardTable is indexed by [player total - 5][dealer up-value - 2] for hands
// with no soft ace. Columns run dealer 2,3,4,5,6,7,8,9,10,A.
var hardTable = [17][10]tableEntry{
	{hh, hh, hh, hh, hh, hh, hh, hh, hh, hh}, // 5
	{hh, hh, hh, hh, hh, hh, hh, hh, hh, hh}, // 6
	{hh, hh, hh, hh, hh, hh, hh, hh, hh, hh}, // 7
	{hh, hh, hh, hh, hh, hh, hh, hh, hh, hh}, // 8
	{hh, dh, dh, dh, dh, hh, hh, hh, hh, hh}, // 9
	{dh, dh, dh, dh, dh, dh, dh, dh, hh, hh}, // 10
	{dh, dh, dh, dh, dh, dh, dh, dh, dh, hh}, // 11
	{hh, hh, ss, ss, ss, hh, hh, hh, hh, hh}, // 12
	{ss, ss, ss, ss, ss, hh, hh, hh, hh, hh}, // 13
	{ss, ss, ss, ss, ss, hh, hh, hh, hh, hh}, // 14
	{ss, ss, ss, ss, ss, hh, hh, hh, rh, hh}, // 15
	{ss, ss, ss, ss, ss, hh, hh, rh, rh, rh}, // 16
	{ss, ss, ss, ss, ss, ss, ss, ss, ss, ss}, // 17
	{ss, ss, ss, ss, ss, ss, ss, ss, ss, ss}, // 18
	{ss, ss, ss, ss, ss, ss, ss, ss, ss, ss}, // 19
	{ss, ss, ss, ss, ss, ss, ss, ss, ss, ss}, // 20
	{ss, ss, ss, ss, ss, ss, ss, ss, ss, ss}, // 21
}

// softTable is indexed by [player total - 13][dealer up-value - 2] for hands
// whose aces all still count as 11.
var softTable = [9][10]tableEntry{
	{hh, hh, hh, dh, dh, hh, hh, hh, hh, hh}, // 13 (A,2)
	{hh, hh, hh, dh, dh, hh, hh, hh, hh, hh}, // 14 (A,3)
	{hh, hh, dh, dh, dh, hh, hh, hh, hh, hh}, // 15 (A,4)
	{hh, hh, dh, dh, dh, hh, hh, hh, hh, hh}, // 16 (A,5)
	{hh, dh, dh, dh, dh, hh, hh, hh, hh, hh}, // 17 (A,6)
	{ss, ds, ds, ds, ds, ss, ss, hh, hh, hh}, // 18 (A,7)
	{ss, ss, ss, ss, ss, ss, ss, ss, ss, ss}, // 19 (A,8)
	{ss, ss, ss, ss, ss, ss, ss, ss, ss, ss}, // 20 (A,9)
	{ss, ss, ss, ss, ss, ss, ss, ss, ss, ss}, // 21 (A,10)
}

// pairTable is indexed by [paired card value - 2][dealer up-value - 2] for
// two-card hands of equal value.
var pairTable = [10][10]tableEntry{
	{hh, hh, pp, pp, pp, pp, hh, hh, hh, hh}, // 2,2
	{hh, hh, pp, pp, pp, pp, hh, hh, hh, hh}, // 3,3
	{hh, hh, hh, hh, hh, hh, hh, hh, hh, hh}, // 4,4
	{dh, dh, dh, dh, dh, dh, dh, dh, hh, hh}, // 5,5
	{hh, pp, pp, pp, pp, hh, hh, hh, hh, hh}, // 6,6
	{pp, pp, pp, pp, pp, pp, hh, hh, hh, hh}, // 7,7
	{pp, pp, pp, pp, pp, pp, pp, pp, pp, pp}, // 8,8
	{pp, pp, pp, pp, pp, ss, pp, pp, ss, ss}, // 9,9
	{ss, ss, ss, ss, ss, ss, ss, ss, ss, ss}, // 10,10
	{pp, pp, pp, pp, pp, pp, pp, pp, pp, pp}, // A,A
}
