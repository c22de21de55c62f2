package types

import (
	"encoding/json"
	"encoding/xml"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParse(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		test         string
		input        string
		time         time.Time
		undetermined bool
		str          string
	}{
		{
			test:         "no_zone",
			input:        "2020-03-07T04:40:00",
			time:         time.Date(2020, 3, 7, 4, 40, 0, 0, time.UTC),
			undetermined: true,
			str:          "2020-03-07T04:40:00",
		},
		{
			test:  "utc",
			input: "2020-03-07T04:40:00Z",
			time:  time.Date(2020, 3, 7, 4, 40, 0, 0, time.UTC),
			str:   "2020-03-07T04:40:00Z",
		},
		{
			test:  "positive_offset",
			input: "2020-03-07T04:40:00+06:30",
			time:  time.Date(2020, 3, 6, 22, 10, 0, 0, time.UTC),
			str:   "2020-03-06T22:10:00Z",
		},
		{
			test:  "negative_offset",
			input: "2020-03-07T04:40:00-06:30",
			time:  time.Date(2020, 3, 7, 11, 10, 0, 0, time.UTC),
			str:   "2020-03-07T11:10:00Z",
		},
		{
			test:  "zero_offset",
			input: "2020-03-07T04:40:00+00:00",
			time:  time.Date(2020, 3, 7, 4, 40, 0, 0, time.UTC),
			str:   "2020-03-07T04:40:00Z",
		},
		{
			test:  "millis",
			input: "2020-03-07T04:40:00.123Z",
			time:  time.Date(2020, 3, 7, 4, 40, 0, 123_000_000, time.UTC),
			str:   "2020-03-07T04:40:00.123Z",
		},
		{
			test:  "tenths",
			input: "2020-03-07T04:40:00.5Z",
			time:  time.Date(2020, 3, 7, 4, 40, 0, 500_000_000, time.UTC),
			str:   "2020-03-07T04:40:00.500Z",
		},
		{
			test:  "nanos_truncated",
			input: "2020-03-07T04:40:00.123456789Z",
			time:  time.Date(2020, 3, 7, 4, 40, 0, 123_000_000, time.UTC),
			str:   "2020-03-07T04:40:00.123Z",
		},
		{
			test:         "no_zone_millis",
			input:        "2020-03-07T04:40:00.250",
			time:         time.Date(2020, 3, 7, 4, 40, 0, 250_000_000, time.UTC),
			undetermined: true,
			str:          "2020-03-07T04:40:00.250",
		},
		{
			test:  "zero_millis",
			input: "2020-03-07T04:40:00.000Z",
			time:  time.Date(2020, 3, 7, 4, 40, 0, 0, time.UTC),
			str:   "2020-03-07T04:40:00Z",
		},
	} {
		t.Run(tc.test, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			r := require.New(t)

			ts, err := Parse(tc.input)
			r.NoError(err)
			a.Equal(tc.time, ts.GoTime())
			a.Equal(tc.undetermined, ts.Undetermined())
			a.Equal(tc.str, ts.String())
			a.Equal(tc.time.UnixMilli(), ts.UnixMilli())

			// The string form always parses back to the same timestamp.
			again, err := Parse(ts.String())
			r.NoError(err)
			a.Equal(ts, again)
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		test  string
		input string
	}{
		{"empty", ""},
		{"garbage", "i am not a timestamp"},
		{"date_only", "2020-03-07"},
		{"bad_month", "2020-13-07T04:40:00Z"},
		{"bad_hour", "2020-03-07T25:40:00"},
		{"bad_offset", "2020-03-07T04:40:00+25:00"},
		{"space", "2020-03-07 04:40:00Z"},
	} {
		t.Run(tc.test, func(t *testing.T) {
			t.Parallel()
			ts, err := Parse(tc.input)
			require.Error(t, err)
			require.ErrorIs(t, err, ErrTimestamp)
			var perr *time.ParseError
			require.ErrorAs(t, err, &perr)
			assert.Nil(t, ts)
		})
	}
}

func TestHasZone(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	a.True(hasZone("2020-03-07T04:40:00Z"))
	a.True(hasZone("2020-03-07T04:40:00+06:30"))
	a.True(hasZone("2020-03-07T04:40:00-06:30"))
	a.False(hasZone("2020-03-07T04:40:00"))
	a.False(hasZone("2020-03-07T04:40:00.123"))
}

func TestNew(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	loc := time.FixedZone("", 6*60*60+30*60)
	src := time.Date(2020, 3, 7, 4, 40, 0, 123_456_789, loc)
	ts := New(src)
	a.Equal(time.Date(2020, 3, 6, 22, 10, 0, 123_000_000, time.UTC), ts.GoTime())
	a.False(ts.Undetermined())
	a.Equal("2020-03-06T22:10:00.123Z", ts.String())

	ts = NewUndetermined(src)
	a.Equal(time.Date(2020, 3, 7, 4, 40, 0, 123_000_000, time.UTC), ts.GoTime())
	a.True(ts.Undetermined())
	a.Equal("2020-03-07T04:40:00.123", ts.String())

	ts = NewUndetermined(time.Date(2020, 3, 7, 4, 40, 0, 0, time.UTC))
	a.Equal("2020-03-07T04:40:00", ts.String())
}

func TestFromMillis(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		test string
		ms   int64
		str  string
	}{
		{"epoch", 0, "1970-01-01T00:00:00Z"},
		{"original", 1_338_494_969, "1970-01-16T11:48:14.969Z"},
		{"whole_seconds", 1_583_556_000_000, "2020-03-07T04:40:00Z"},
		{"negative", -1, "1969-12-31T23:59:59.999Z"},
	} {
		t.Run(tc.test, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)

			ts := FromMillis(tc.ms)
			a.Equal(tc.ms, ts.UnixMilli())
			a.False(ts.Undetermined())
			a.Equal(tc.str, ts.String())
			a.Equal(time.UTC, ts.GoTime().Location())
		})
	}
}

func TestZero(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	var ts Timestamp
	a.True(ts.IsZero())
	a.Equal("0001-01-01T00:00:00Z", ts.String())
	a.False(FromMillis(0).IsZero())
}

func TestEqualCompare(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	local, err := Parse("2020-03-07T04:40:00")
	r.NoError(err)
	utc, err := Parse("2020-03-07T04:40:00Z")
	r.NoError(err)
	offset, err := Parse("2020-03-07T10:10:00+05:30")
	r.NoError(err)

	// The undetermined flag does not participate in equality.
	a.True(local.Equal(*utc))
	a.True(utc.Equal(*local))
	a.True(utc.Equal(*offset))
	a.Equal(0, local.Compare(*utc))
	a.NotEqual(local.String(), utc.String())

	later := FromMillis(utc.UnixMilli() + 1)
	a.False(utc.Equal(*later))
	a.Equal(-1, utc.Compare(*later))
	a.Equal(1, later.Compare(*local))
}

type record struct {
	XMLName  xml.Name   `json:"-"                  yaml:"-"                  xml:"attribution"`
	Modified *Timestamp `json:"modified,omitempty" yaml:"modified,omitempty" xml:"modified,omitempty"`
}

func TestJSON(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	data, err := json.Marshal(record{Modified: FromMillis(1_338_494_969)})
	r.NoError(err)
	a.JSONEq(`{"modified": 1338494969}`, string(data))

	var rec record
	r.NoError(json.Unmarshal([]byte(`{"modified": 1338494969}`), &rec))
	a.Equal(FromMillis(1_338_494_969), rec.Modified)

	// Undetermined time zones are lost in JSON.
	ts, err := Parse("2020-03-07T04:40:00")
	r.NoError(err)
	data, err = json.Marshal(ts)
	r.NoError(err)
	a.Equal("1583556000000", string(data))
	got := new(Timestamp)
	r.NoError(json.Unmarshal(data, got))
	a.True(ts.Equal(*got))
	a.False(got.Undetermined())

	// Null leaves the value unchanged.
	r.NoError(got.UnmarshalJSON([]byte("null")))
	a.Equal(int64(1_583_556_000_000), got.UnixMilli())

	data, err = json.Marshal(record{})
	r.NoError(err)
	a.JSONEq(`{}`, string(data))

	err = json.Unmarshal([]byte(`{"modified": "2020-03-07T04:40:00Z"}`), &rec)
	r.EqualError(err, `timestamp: cannot parse "2020-03-07T04:40:00Z" as milliseconds`)
	r.ErrorIs(err, ErrTimestamp)
}

func TestXML(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		test string
		xml  string
		exp  string
	}{
		{
			test: "undetermined",
			xml:  `<attribution><modified>2020-03-07T04:40:00</modified></attribution>`,
		},
		{
			test: "utc",
			xml:  `<attribution><modified>2020-03-07T04:40:00Z</modified></attribution>`,
		},
		{
			test: "offset",
			xml:  `<attribution><modified>2020-03-07T04:40:00+06:30</modified></attribution>`,
			exp:  `<attribution><modified>2020-03-06T22:10:00Z</modified></attribution>`,
		},
		{
			test: "millis",
			xml:  `<attribution><modified>2020-03-07T04:40:00.042</modified></attribution>`,
		},
	} {
		t.Run(tc.test, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			r := require.New(t)

			var rec record
			r.NoError(xml.Unmarshal([]byte(tc.xml), &rec))
			r.NotNil(rec.Modified)

			data, err := xml.Marshal(rec)
			r.NoError(err)
			exp := tc.exp
			if exp == "" {
				exp = tc.xml
			}
			a.Equal(exp, string(data))
		})
	}

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()
		var rec record
		err := xml.Unmarshal([]byte(`<attribution><modified>yesterday</modified></attribution>`), &rec)
		require.ErrorIs(t, err, ErrTimestamp)
	})
}

func TestYAML(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	for _, str := range []string{
		"2020-03-07T04:40:00",
		"2020-03-07T04:40:00Z",
		"2020-03-07T04:40:00.123Z",
	} {
		ts, err := Parse(str)
		r.NoError(err)
		data, err := yaml.Marshal(record{Modified: ts})
		r.NoError(err)

		var rec record
		r.NoError(yaml.Unmarshal(data, &rec))
		a.Equal(ts, rec.Modified, str)
		a.Equal(str, rec.Modified.String())
	}

	var rec record
	r.NoError(yaml.Unmarshal([]byte("modified: 1338494969\n"), &rec))
	a.Equal(FromMillis(1_338_494_969), rec.Modified)

	r.NoError(yaml.Unmarshal([]byte("modified: 2020-03-07T04:40:00+06:30\n"), &rec))
	a.Equal("2020-03-06T22:10:00Z", rec.Modified.String())

	err := yaml.Unmarshal([]byte("modified: [1]\n"), &rec)
	r.EqualError(err, "timestamp: cannot decode YAML !!seq into Timestamp")
	r.ErrorIs(err, ErrTimestamp)

	err = yaml.Unmarshal([]byte("modified: nope\n"), &rec)
	r.ErrorIs(err, ErrTimestamp)
}

func FuzzRoundTrip(f *testing.F) {
	minMillis := time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	maxMillis := time.Date(9999, 12, 31, 23, 59, 59, 999_000_000, time.UTC).UnixMilli()

	f.Add(int64(1_338_494_969), false)
	f.Add(int64(1_583_556_000_000), true)
	f.Add(int64(1_583_556_000_250), true)
	f.Add(int64(0), false)
	f.Add(int64(-1), true)
	f.Add(minMillis, false)
	f.Add(maxMillis, true)

	f.Fuzz(func(t *testing.T, ms int64, undetermined bool) {
		if ms < minMillis || ms > maxMillis {
			t.Skip()
		}
		ts := FromMillis(ms)
		if undetermined {
			ts = NewUndetermined(ts.GoTime())
		}

		str := ts.String()
		parsed, err := Parse(str)
		require.NoError(t, err)
		assert.Equal(t, ms, parsed.UnixMilli())
		assert.Equal(t, undetermined, parsed.Undetermined())
		assert.True(t, ts.Equal(*parsed))
		assert.Equal(t, str, parsed.String())
	})
}

func FuzzParse(f *testing.F) {
	for _, str := range []string{
		"2020-03-07T04:40:00Z",
		"2020-03-07T04:40:00",
		"2020-03-06T15:40:00-06:30",
		"2020-03-07T11:10:00+06:30",
		"2020-03-07T04:40:00.123456789Z",
		"0000-01-01T00:00:00",
		"bogus",
	} {
		f.Add(str)
	}

	f.Fuzz(func(t *testing.T, str string) {
		ts, err := Parse(str)
		if err != nil {
			require.ErrorIs(t, err, ErrTimestamp)
			return
		}
		// Offsets can move the UTC instant outside four-digit years.
		if year := ts.GoTime().Year(); year < 0 || year > 9999 {
			t.Skip()
		}

		again, err := Parse(ts.String())
		require.NoError(t, err)
		assert.Equal(t, ts.UnixMilli(), again.UnixMilli())
		assert.Equal(t, ts.Undetermined(), again.Undetermined())
		assert.Equal(t, ts.String(), again.String())
	})
}
