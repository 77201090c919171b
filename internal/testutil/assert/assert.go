// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package assert provides small assertion helpers for tests, so that the
// module does not need a testing-framework dependency.
package assert

import (
	"fmt"
	"reflect"
	"regexp"
)

type miniTB interface {
	Helper()
	Fatalf(string, ...any)
}

// Equal asserts that two comparable values are equal.
//
// For slices, maps and structs containing them, use [DeepEqual].
func Equal(tb miniTB, want, got any) {
	tb.Helper()
	if got != want {
		tb.Fatalf("got %v; want %v", got, want)
	}
}

// DeepEqual asserts that two values are equal under reflect.DeepEqual.
func DeepEqual(tb miniTB, want, got any) {
	tb.Helper()
	if !reflect.DeepEqual(got, want) {
		tb.Fatalf("got %#v; want %#v", got, want)
	}
}

// Equalf is Equal with a printf-style context prefix on failure.
func Equalf(tb miniTB, want, got any, format string, args ...any) {
	tb.Helper()
	if got != want {
		tb.Fatalf("%s: got %v; want %v", fmt.Sprintf(format, args...), got, want)
	}
}

// NoError asserts that err is nil.
func NoError(tb miniTB, err error) {
	tb.Helper()
	if err != nil {
		tb.Fatalf("unexpected error: %v", err)
	}
}

// Error asserts that err is non-nil.
func Error(tb miniTB, err error) {
	tb.Helper()
	if err == nil {
		tb.Fatalf("got nil; want error")
	}
}

// ErrorEqual asserts that err is non-nil and its message is exactly want.
func ErrorEqual(tb miniTB, want string, err error) {
	tb.Helper()
	if err == nil {
		tb.Fatalf("got nil; want error %q", want)
		return
	}
	if err.Error() != want {
		tb.Fatalf("error %q; want %q", err.Error(), want)
	}
}

// ErrorMatches asserts that err is non-nil and its message matches pattern.
func ErrorMatches(tb miniTB, pattern string, err error) {
	tb.Helper()
	if err == nil {
		tb.Fatalf("got nil; want error matching %q", pattern)
		return
	}
	re, reErr := regexp.Compile(pattern)
	if reErr != nil {
		tb.Fatalf("invalid regexp %q: %v", pattern, reErr)
		return
	}
	if !re.MatchString(err.Error()) {
		tb.Fatalf("error %q does not match %q", err.Error(), pattern)
	}
}

// True asserts that got is true.
func True(tb miniTB, got bool) {
	tb.Helper()
	if !got {
		tb.Fatalf("got false; want true")
	}
}

// False asserts that got is false.
func False(tb miniTB, got bool) {
	tb.Helper()
	if got {
		tb.Fatalf("got true; want false")
	}
}

// Truef is True with a printf-style context prefix on failure.
func Truef(tb miniTB, got bool, format string, args ...any) {
	tb.Helper()
	if !got {
		tb.Fatalf("%s: got false; want true", fmt.Sprintf(format, args...))
	}
}

// Falsef is False with a printf-style context prefix on failure.
func Falsef(tb miniTB, got bool, format string, args ...any) {
	tb.Helper()
	if got {
		tb.Fatalf("%s: got true; want false", fmt.Sprintf(format, args...))
	}
}

// IsNil asserts that v is nil, including typed nil pointers and slices.
func IsNil(tb miniTB, v any) {
	tb.Helper()
	if !isNil(v) {
		tb.Fatalf("got non-nil (%T): %#v", v, v)
	}
}

// PanicMatches asserts that f panics with a message matching pattern.
func PanicMatches(tb miniTB, pattern string, f func()) {
	tb.Helper()
	var pan any
	func() {
		defer func() { pan = recover() }()
		f()
	}()
	if pan == nil {
		tb.Fatalf("function did not panic; want panic matching %q", pattern)
		return
	}
	msg := fmt.Sprint(pan)
	if err, ok := pan.(error); ok {
		msg = err.Error()
	}
	if !regexp.MustCompile(pattern).MatchString(msg) {
		tb.Fatalf("panic %q does not match %q", msg, pattern)
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
