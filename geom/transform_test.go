package geom

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNewTransformRejectsParallelVectors(t *testing.T) {
	cases := []struct {
		name        string
		forward, up mgl64.Vec3
	}{
		{"same", mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 1, 0}},
		{"opposite", mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 0, -1}},
		{"scaled", mgl64.Vec3{1, 2, 3}, mgl64.Vec3{2, 4, 6}},
		{"zero forward", mgl64.Vec3{}, mgl64.Vec3{0, 1, 0}},
		{"zero up", mgl64.Vec3{0, 0, -1}, mgl64.Vec3{}},
		{"nan", mgl64.Vec3{math.NaN(), 0, 0}, mgl64.Vec3{0, 1, 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTransform(mgl64.Vec3{}, tc.forward, tc.up)
			if !errors.Is(err, ErrDegenerateOrientation) {
				t.Fatalf("expected ErrDegenerateOrientation, got %v", err)
			}
		})
	}
}

func TestRotationRowsOrthonormal(t *testing.T) {
	cases := []struct {
		name        string
		forward, up mgl64.Vec3
	}{
		{"default", DefaultForward, DefaultUp},
		{"positive z", mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 1, 0}},
		{"diagonal", mgl64.Vec3{1, 1, 1}, mgl64.Vec3{0, 1, 0}},
		{"tilted", mgl64.Vec3{0.3, -0.2, -1}, mgl64.Vec3{0.1, 1, 0.2}},
		{"unnormalized", mgl64.Vec3{10, 0, -10}, mgl64.Vec3{0, 5, 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr, err := NewTransform(mgl64.Vec3{}, tc.forward, tc.up)
			if err != nil {
				t.Fatalf("NewTransform: %v", err)
			}

			m := tr.Rotation()
			rows := [3]mgl64.Vec3{m.Row(0), m.Row(1), m.Row(2)}

			for i := range 3 {
				if diff := math.Abs(rows[i].Len() - 1); diff > 1e-12 {
					t.Fatalf("row %d is not unit length: %v", i, rows[i].Len())
				}
				for j := i + 1; j < 3; j++ {
					if dot := math.Abs(rows[i].Dot(rows[j])); dot > 1e-12 {
						t.Fatalf("rows %d and %d are not orthogonal: dot=%v", i, j, dot)
					}
				}
			}

			if det := m.Det(); math.Abs(det-1) > 1e-12 {
				t.Fatalf("rotation determinant should be +1, got %v", det)
			}
		})
	}
}

func TestDefaultRotationIsIdentity(t *testing.T) {
	m := IdentityTransform().Rotation()
	want := mgl64.Ident3()

	for i := range 9 {
		if diff := math.Abs(m[i] - want[i]); diff > 1e-15 {
			t.Fatalf("element %d: got %v, want %v", i, m[i], want[i])
		}
	}
}

func TestFromWorldMatrixPositionExact(t *testing.T) {
	position := mgl64.Vec3{1.25, -3.5, 42.0625}

	m := mgl64.Translate3D(position.X(), position.Y(), position.Z()).
		Mul4(mgl64.HomogRotate3D(0.7, mgl64.Vec3{0, 1, 0}.Normalize()))

	tr, err := FromWorldMatrix(m)
	if err != nil {
		t.Fatalf("FromWorldMatrix: %v", err)
	}

	// Translation must survive extraction bit-exactly.
	if tr.Position != position {
		t.Fatalf("position mismatch: got %v, want %v", tr.Position, position)
	}
}

func TestFromWorldMatrixIdentity(t *testing.T) {
	tr, err := FromWorldMatrix(mgl64.Ident4())
	if err != nil {
		t.Fatalf("FromWorldMatrix: %v", err)
	}

	if diff := tr.Forward.Sub(DefaultForward).Len(); diff > 1e-12 {
		t.Fatalf("forward mismatch: got %v", tr.Forward)
	}
	if diff := tr.Up.Sub(DefaultUp).Len(); diff > 1e-12 {
		t.Fatalf("up mismatch: got %v", tr.Up)
	}
}

func TestFromWorldMatrixRoundTrip(t *testing.T) {
	tr, err := NewTransform(mgl64.Vec3{2, 1, -4}, mgl64.Vec3{1, 0.5, -1}, mgl64.Vec3{0, 1, 0.25})
	if err != nil {
		t.Fatalf("NewTransform: %v", err)
	}

	got, err := FromWorldMatrix(tr.Matrix())
	if err != nil {
		t.Fatalf("FromWorldMatrix: %v", err)
	}

	if diff := got.Position.Sub(tr.Position).Len(); diff > 1e-12 {
		t.Fatalf("position mismatch: got %v, want %v", got.Position, tr.Position)
	}

	r1, u1, f1 := tr.Basis()
	r2, u2, f2 := got.Basis()
	for _, pair := range [][2]mgl64.Vec3{{r1, r2}, {u1, u2}, {f1, f2}} {
		if diff := pair[0].Sub(pair[1]).Len(); diff > 1e-9 {
			t.Fatalf("basis mismatch: %v vs %v", pair[0], pair[1])
		}
	}
}

func TestFromWorldMatrixRejectsDegenerateRotation(t *testing.T) {
	var m mgl64.Mat4
	m[15] = 1 // zero rotation block, valid homogeneous row

	_, err := FromWorldMatrix(m)
	if !errors.Is(err, ErrDegenerateOrientation) {
		t.Fatalf("expected ErrDegenerateOrientation, got %v", err)
	}
}

func TestQuaternionMatchesRotation(t *testing.T) {
	tr, err := NewTransform(mgl64.Vec3{}, mgl64.Vec3{1, 0.2, -0.5}, mgl64.Vec3{0, 1, 0})
	if err != nil {
		t.Fatalf("NewTransform: %v", err)
	}

	q := tr.Quaternion()
	if diff := math.Abs(q.Len() - 1); diff > 1e-9 {
		t.Fatalf("quaternion is not unit length: %v", q.Len())
	}

	// The quaternion encodes local-to-world rotation; its matrix transposed
	// must equal the world-to-listener rotation.
	qm := q.Mat4()
	rot := tr.Rotation()

	for r := range 3 {
		for c := range 3 {
			if diff := math.Abs(qm.At(r, c) - rot.At(c, r)); diff > 1e-9 {
				t.Fatalf("element (%d,%d): quat %v vs rotation %v", r, c, qm.At(r, c), rot.At(c, r))
			}
		}
	}
}
