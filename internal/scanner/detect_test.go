package scanner

import (
	"testing"
)

func TestDetectDirectExports(t *testing.T) {
	src := []byte(`
import { db } from "../db.ts";

export const GET = (req) => Response.json(db.all());

export async function POST(req) {
  return Response.json(await db.insert(await req.json()));
}
`)
	exports := TextDetector{}.Detect(src)
	if len(exports) != 2 {
		t.Fatalf("expected 2 exports, got %d: %v", len(exports), exports)
	}
	// Methods order, not file order: GET before POST regardless of position.
	if exports[0].Method != "GET" || exports[0].Shape != Direct {
		t.Errorf("exports[0] = %+v, want direct GET", exports[0])
	}
	if exports[1].Method != "POST" || exports[1].Shape != Direct {
		t.Errorf("exports[1] = %+v, want direct POST", exports[1])
	}
}

func TestDetectFactoryExport(t *testing.T) {
	src := []byte(`
import { handlers } from "framework";
import { auth } from "../middleware.ts";

export const DELETE = handlers(auth, (req) => new Response(null, { status: 204 }));
export let PATCH = handlers(auth, patch);
export var PUT = (req) => new Response("ok");
`)
	exports := TextDetector{}.Detect(src)
	if len(exports) != 3 {
		t.Fatalf("expected 3 exports, got %d: %v", len(exports), exports)
	}
	want := []Export{
		{Method: "PUT", Shape: Direct},
		{Method: "DELETE", Shape: Factory},
		{Method: "PATCH", Shape: Factory},
	}
	for i, w := range want {
		if exports[i] != w {
			t.Errorf("exports[%d] = %+v, want %+v", i, exports[i], w)
		}
	}
}

func TestDetectDeclarationOrder(t *testing.T) {
	src := []byte(`
export const PATCH = (req) => new Response("patch");
export const GET = (req) => new Response("get");
`)
	exports := TextDetector{}.Detect(src)
	if len(exports) != 2 {
		t.Fatalf("expected 2 exports, got %d", len(exports))
	}
	if exports[0].Method != "GET" || exports[1].Method != "PATCH" {
		t.Errorf("expected GET before PATCH, got %v", exports)
	}
}

func TestDetectNonRouteFile(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"no exports", `const GET = () => {};`},
		{"unrelated export", `export const helper = () => {};`},
		{"lowercase method", `export const get = () => {};`},
		{"method mentioned mid-line", `const x = "export const"; // GET`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if exports := (TextDetector{}).Detect([]byte(tt.src)); len(exports) != 0 {
				t.Errorf("expected no exports, got %v", exports)
			}
		})
	}
}

func TestDetectTextualFalsePositive(t *testing.T) {
	// Detection is textual, not a parse: an export-shaped line inside a
	// block comment still matches. Documented limitation.
	src := []byte(`
/*
export const GET = (req) => new Response("commented out");
*/
`)
	exports := TextDetector{}.Detect(src)
	if len(exports) != 1 || exports[0].Method != "GET" {
		t.Fatalf("expected the documented false positive, got %v", exports)
	}
}
