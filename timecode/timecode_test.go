package timecode

import (
	"errors"
	"testing"

	"github.com/nathanpbutler/opx/opxerr"
)

func allTimebases() []Timebase {
	return []Timebase{Rate24, Rate25, Rate30, Rate48, Rate50, Rate60}
}

func TestFromHMSF_ToBytes_FromBytes_RoundTrip(t *testing.T) {
	t.Parallel()
	for _, tb := range allTimebases() {
		tb := tb
		dfOptions := []bool{false}
		if tb == Rate30 || tb == Rate60 {
			dfOptions = append(dfOptions, true)
		}
		for _, df := range dfOptions {
			df := df
			t.Run("", func(t *testing.T) {
				t.Parallel()
				for h := 0; h < 24; h += 3 {
					for m := 0; m < 60; m += 7 {
						for s := 0; s < 60; s += 11 {
							for f := 0; f < int(tb); f++ {
								tc, err := FromHMSF(h, m, s, f, tb, df)
								if err != nil {
									// Some H:M:S:F combinations are legitimately
									// nonexistent under drop-frame (e.g. minute 1
									// frame 0); skip those rather than fail.
									continue
								}
								b := tc.ToBytes()
								back, err := FromBytes(b, tb, df)
								if err != nil {
									t.Fatalf("FromBytes: %v", err)
								}
								if back != tc {
									t.Fatalf("round-trip mismatch: %v -> %v -> %v", tc, b, back)
								}
							}
						}
					}
				}
			})
		}
	}
}

func TestFromFrames_FrameNumber_RoundTrip(t *testing.T) {
	t.Parallel()
	for _, tb := range allTimebases() {
		tb := tb
		t.Run("", func(t *testing.T) {
			t.Parallel()
			max := maxFrames(tb, false)
			step := max/997 + 1
			for n := 0; n < max; n += step {
				tc, err := FromFrames(n, tb, false)
				if err != nil {
					t.Fatalf("FromFrames(%d): %v", n, err)
				}
				if tc.FrameNumber() != n {
					t.Fatalf("FrameNumber() = %d, want %d (tc=%v)", tc.FrameNumber(), n, tc)
				}
			}
		})
	}
}

func TestNextWrapsAtMaxFrames(t *testing.T) {
	t.Parallel()
	tc, err := FromFrames(maxFrames(Rate25, false)-1, Rate25, false)
	if err != nil {
		t.Fatal(err)
	}
	wrapped := tc.Next()
	if wrapped.FrameNumber() != 0 {
		t.Fatalf("Next() at max-1 = %v, want frame 0", wrapped)
	}
}

func TestDropFrame30_SkipsTwoFrameNumbersPerMinuteExceptTenth(t *testing.T) {
	t.Parallel()
	before, err := FromHMSF(0, 0, 59, 29, Rate30, true)
	if err != nil {
		t.Fatal(err)
	}
	after := before.Next()
	want, err := FromHMSF(0, 1, 0, 2, Rate30, true)
	if err != nil {
		t.Fatal(err)
	}
	if after != want {
		t.Fatalf("frame after 00:00:59;29 = %v, want %v", after, want)
	}

	if _, err := FromHMSF(0, 1, 0, 0, Rate30, true); err == nil {
		t.Fatal("00:01:00;00 should not exist under drop-frame")
	}
	if _, err := FromHMSF(0, 1, 0, 1, Rate30, true); err == nil {
		t.Fatal("00:01:00;01 should not exist under drop-frame")
	}

	// Every tenth minute is not dropped.
	beforeTen, err := FromHMSF(0, 9, 59, 29, Rate30, true)
	if err != nil {
		t.Fatal(err)
	}
	afterTen := beforeTen.Next()
	wantTen, err := FromHMSF(0, 10, 0, 0, Rate30, true)
	if err != nil {
		t.Fatal(err)
	}
	if afterTen != wantTen {
		t.Fatalf("frame after 00:09:59;29 = %v, want %v", afterTen, wantTen)
	}
}

func TestInvalidDropFrame(t *testing.T) {
	t.Parallel()
	_, err := FromHMSF(0, 0, 0, 0, Rate25, true)
	if !errors.Is(err, opxerr.ErrInvalidDropFrame) {
		t.Fatalf("got %v, want ErrInvalidDropFrame", err)
	}
}

func TestOutOfRange(t *testing.T) {
	t.Parallel()
	_, err := FromHMSF(0, 0, 0, 30, Rate25, false)
	if !errors.Is(err, opxerr.ErrOutOfRange) {
		t.Fatalf("got %v, want ErrOutOfRange", err)
	}
}

func TestTimecodeMismatchAcrossTimebase(t *testing.T) {
	t.Parallel()
	a, _ := FromHMSF(1, 0, 0, 0, Rate25, false)
	b, _ := FromHMSF(1, 0, 0, 0, Rate30, false)
	if _, err := a.Equal(b); !errors.Is(err, opxerr.ErrTimecodeMismatch) {
		t.Fatalf("got %v, want ErrTimecodeMismatch", err)
	}
	if _, err := a.AddTimecode(b); !errors.Is(err, opxerr.ErrTimecodeMismatch) {
		t.Fatalf("got %v, want ErrTimecodeMismatch", err)
	}
}

func TestFromString(t *testing.T) {
	t.Parallel()
	tc, err := FromString("01:02:03:04", Rate25, false)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := FromHMSF(1, 2, 3, 4, Rate25, false)
	if tc != want {
		t.Fatalf("got %v, want %v", tc, want)
	}

	dfTC, err := FromString("01:02:03;04", Rate30, false)
	if err != nil {
		t.Fatal(err)
	}
	if !dfTC.DropFrame() {
		t.Fatal("semicolon separator should force drop-frame")
	}
}

func TestRateFromCode(t *testing.T) {
	t.Parallel()
	// rate code for 25fps non-drop: index 2 in rateTable, bit0=0.
	tb, df, ok := RateFromCode(2 << 1)
	if !ok || tb != Rate25 || df {
		t.Fatalf("got tb=%v df=%v ok=%v, want Rate25/false/true", tb, df, ok)
	}

	// 30fps drop-frame: index 3, bit0=1.
	tb, df, ok = RateFromCode(3<<1 | 0x01)
	if !ok || tb != Rate30 || !df {
		t.Fatalf("got tb=%v df=%v ok=%v, want Rate30/true/true", tb, df, ok)
	}

	_, _, ok = RateFromCode(13 << 1)
	if ok {
		t.Fatal("reserved rate-table entry should not be ok")
	}
}

func TestFieldDerivation(t *testing.T) {
	t.Parallel()
	tc, _ := FromHMSF(0, 0, 0, 3, Rate50, false)
	if tc.Field() != 1 {
		t.Fatalf("Field() = %d, want 1", tc.Field())
	}
	tc25, _ := FromHMSF(0, 0, 0, 3, Rate25, false)
	if tc25.Field() != 0 {
		t.Fatalf("Field() = %d, want 0 for 25fps", tc25.Field())
	}
}
