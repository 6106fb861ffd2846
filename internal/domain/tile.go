package domain

import "strconv"

// Snapshot attribute keys the engine gives typed meaning to. The dump
// mixes lowercase simulator fields with CamelCase cache fields; every
// other key is carried opaquely in TileRecord.Attrs.
const (
	KeyTemperature    = "temperature"
	KeyMinTemperature = "MinTemperature"
	KeyMaxTemperature = "MaxTemperature"
	KeyHilliness      = "hilliness"
	KeyRivers         = "Rivers"
	KeyRoads          = "Roads"
	KeyPrimaryBiome   = "PrimaryBiome"
)

// NullSentinel is the literal value the dump writes for a field that
// is logically absent, as opposed to the key being missing entirely or
// holding the collection presence marker "[...]".
const NullSentinel = "null"

// ValueKind tags the coercion result of one snapshot property value.
type ValueKind int

const (
	ValueString ValueKind = iota
	ValueInt
	ValueFloat
)

// Value is a tagged variant for a snapshot property value: an integer,
// a float, or the raw string (which includes the "null" sentinel and
// the "[...]" presence marker).
type Value struct {
	kind ValueKind
	str  string
	num  float64
	iv   int64
}

// StringValue wraps raw text that did not coerce to a number.
func StringValue(s string) Value { return Value{kind: ValueString, str: s} }

// IntValue wraps an integer-coerced value.
func IntValue(i int64) Value { return Value{kind: ValueInt, iv: i} }

// FloatValue wraps a float-coerced value.
func FloatValue(f float64) Value { return Value{kind: ValueFloat, num: f} }

// Kind reports which variant the value holds.
func (v Value) Kind() ValueKind { return v.kind }

// Float64 returns the value as a float64. Integer values convert;
// strings report false.
func (v Value) Float64() (float64, bool) {
	switch v.kind {
	case ValueFloat:
		return v.num, true
	case ValueInt:
		return float64(v.iv), true
	default:
		return 0, false
	}
}

// Int64 returns the integer value, or false for floats and strings.
func (v Value) Int64() (int64, bool) {
	if v.kind == ValueInt {
		return v.iv, true
	}
	return 0, false
}

// IsNull reports whether the value is the explicit absence sentinel.
func (v Value) IsNull() bool {
	return v.kind == ValueString && v.str == NullSentinel
}

// String renders the value the way it appeared in the dump.
func (v Value) String() string {
	switch v.kind {
	case ValueInt:
		return strconv.FormatInt(v.iv, 10)
	case ValueFloat:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	default:
		return v.str
	}
}

// Hilliness is the ordinal terrain-ruggedness classification of a tile.
type Hilliness string

const (
	HillinessFlat        Hilliness = "Flat"
	HillinessSmallHills  Hilliness = "SmallHills"
	HillinessLargeHills  Hilliness = "LargeHills"
	HillinessMountainous Hilliness = "Mountainous"
)

// ParseHilliness maps a snapshot value onto the enum, reporting false
// for anything that is not one of the four known labels.
func ParseHilliness(s string) (Hilliness, bool) {
	switch Hilliness(s) {
	case HillinessFlat, HillinessSmallHills, HillinessLargeHills, HillinessMountainous:
		return Hilliness(s), true
	}
	return "", false
}

// TileRecord is one parsed tile from a snapshot dump. Typed fields are
// projections of Attrs; unknown keys stay in Attrs for forward
// compatibility. A record is created once by the parser, annotated in
// place with GrowingDays by the pipeline, and never mutated after.
type TileRecord struct {
	ID int

	// Temperature fields in °C. Complete reports whether all three
	// parsed as numbers; incomplete tiles stay in the tile set but are
	// excluded from annotation and filtering.
	Temperature    float64
	MinTemperature float64
	MaxTemperature float64
	Complete       bool

	Hilliness Hilliness
	HasRiver  bool
	HasRoad   bool
	Biome     string

	// GrowingDays is the derived growing season length; valid only
	// when Annotated is true.
	GrowingDays int
	Annotated   bool

	Attrs map[string]Value
}

// NewTileRecord derives the typed projections for a parsed attribute
// block. A river/road field counts as present iff the key exists with
// a value other than the null sentinel.
func NewTileRecord(id int, attrs map[string]Value) TileRecord {
	rec := TileRecord{ID: id, Attrs: attrs}

	var haveTemp, haveMin, haveMax bool
	rec.Temperature, haveTemp = numericAttr(attrs, KeyTemperature)
	rec.MinTemperature, haveMin = numericAttr(attrs, KeyMinTemperature)
	rec.MaxTemperature, haveMax = numericAttr(attrs, KeyMaxTemperature)
	rec.Complete = haveTemp && haveMin && haveMax

	if v, ok := attrs[KeyHilliness]; ok {
		if h, valid := ParseHilliness(v.String()); valid {
			rec.Hilliness = h
		}
	}
	rec.HasRiver = presentAttr(attrs, KeyRivers)
	rec.HasRoad = presentAttr(attrs, KeyRoads)
	if v, ok := attrs[KeyPrimaryBiome]; ok && !v.IsNull() {
		rec.Biome = v.String()
	}

	return rec
}

func numericAttr(attrs map[string]Value, key string) (float64, bool) {
	v, ok := attrs[key]
	if !ok {
		return 0, false
	}
	return v.Float64()
}

func presentAttr(attrs map[string]Value, key string) bool {
	v, ok := attrs[key]
	return ok && !v.IsNull()
}
