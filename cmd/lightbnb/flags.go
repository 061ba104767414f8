package main

import (
	"strconv"
)

// The set* helpers back flag.FlagSet.Func so an omitted flag leaves the
// target nil rather than a zero value.

func setString(dst **string) func(string) error {
	return func(s string) error {
		*dst = &s
		return nil
	}
}

func setInt64(dst **int64) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		*dst = &v
		return nil
	}
}

func setInt(dst **int) func(string) error {
	return func(s string) error {
		v, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		*dst = &v
		return nil
	}
}

func setFloat64(dst **float64) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*dst = &v
		return nil
	}
}
