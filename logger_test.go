// seehuhn.de/go/surface - B-spline surface rendering
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package surface

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"seehuhn.de/go/geom/rect"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelError} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger enabled for %v", level)
		}
	}
}

func TestLoggerPipeline(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	s := NewSurface(Config{NI: 2, NJ: 2, TI: 2, TJ: 2, ResI: 3, ResJ: 3, Workers: 2})
	c := Camera{VRP: mgl64.Vec3{1, 1, -5}, P: mgl64.Vec3{1, 1, 0}, Up: mgl64.Vec3{0, 1, 0}}
	tr := NewTransform(c, Window{LLx: -2, LLy: -2, URx: 2, URy: 2}, Viewport{URx: 9, URy: 9}, Orthographic)
	NewRenderer(tr, rect.Rect{URx: 10, URy: 10}).Render(s.Mesh(), c, NewShader(Wireframe, func(x, y int) {}, nil))

	out := buf.String()
	for _, msg := range []string{"tessellated surface", "rebuilt transform", "rendered mesh", "workers=2", "faces=4"} {
		if !strings.Contains(out, msg) {
			t.Errorf("log output does not contain %q:\n%s", msg, out)
		}
	}
}

func TestSetLoggerNil(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) did not restore the silent logger")
	}
}
