package scramble

import (
    "os"
    "strings"
)

// MotionPreference reports whether the viewer asked for reduced motion.
type MotionPreference interface {
    ReducedMotion() bool
}

// StaticMotion is a fixed preference.
type StaticMotion bool

func (s StaticMotion) ReducedMotion() bool { return bool(s) }

// EnvMotion reads REDUCE_MOTION or NO_MOTION, following the NO_COLOR
// convention: any non-empty value other than "0" or "false" means reduced.
type EnvMotion struct{}

func (EnvMotion) ReducedMotion() bool {
    for _, k := range []string{"REDUCE_MOTION", "NO_MOTION"} {
        v := strings.ToLower(strings.TrimSpace(os.Getenv(k)))
        if v != "" && v != "0" && v != "false" {
            return true
        }
    }
    return false
}
