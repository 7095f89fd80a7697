//go:build cgo && fcdlopen && !windows

package sys

/*
#include <stdint.h>
#include <stdlib.h>

typedef int (*fc_add_double_fn)(void *p, const char *object, double d);
typedef void (*fc_matrix_op_fn)(void *m, double a, double b);

static int fc_call_add_double(uintptr_t fn, void *p, const char *object, double d) {
	return ((fc_add_double_fn)fn)(p, object, d);
}

static void fc_call_matrix_op(uintptr_t fn, void *m, double a, double b) {
	((fc_matrix_op_fn)fn)(m, a, b);
}
*/
import "C"

import (
	"unsafe"

	"github.com/ebitengine/purego"
)

// bindFloatCalls replaces the table entries taking float64 arguments.
// With cgo enabled purego routes calls through its cgo syscall path, which
// supports integer registers only; these entries call through C instead.
func bindFloatCalls(lib *Lib, handle uintptr) error {
	addDouble, err := purego.Dlsym(handle, "FcPatternAddDouble")
	if err != nil {
		return err
	}
	lib.PatternAddDouble = func(p *Pattern, object string, d float64) Bool {
		o := C.CString(object)
		defer C.free(unsafe.Pointer(o))
		return Bool(C.fc_call_add_double(C.uintptr_t(addDouble), unsafe.Pointer(p), o, C.double(d)))
	}
	matrixOp := func(sym string) (func(m *Matrix, a float64, b float64), error) {
		fn, err := purego.Dlsym(handle, sym)
		if err != nil {
			return nil, err
		}
		return func(m *Matrix, a float64, b float64) {
			C.fc_call_matrix_op(C.uintptr_t(fn), unsafe.Pointer(m), C.double(a), C.double(b))
		}, nil
	}
	if lib.MatrixRotate, err = matrixOp("FcMatrixRotate"); err != nil {
		return err
	}
	if lib.MatrixScale, err = matrixOp("FcMatrixScale"); err != nil {
		return err
	}
	if lib.MatrixShear, err = matrixOp("FcMatrixShear"); err != nil {
		return err
	}
	tracer().Debugf("float argument calls bound through cgo")
	return nil
}
