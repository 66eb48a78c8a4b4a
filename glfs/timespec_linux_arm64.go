//go:build arm64 && linux

package glfs

func newTimespec(sec, nsec int64) Timespec {
	return Timespec{Sec: sec, Nsec: nsec}
}
