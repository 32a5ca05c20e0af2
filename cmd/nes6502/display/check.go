package display

import (
    "os"
    "os/exec"
    "runtime"
)

/* glxinfo fails when there is no usable opengl context */
func hasGlxinfo() bool {
    glxinfo_path, err := exec.LookPath("glxinfo")
    if err != nil {
        return true
    }
    glxinfo := exec.Command(glxinfo_path)
    err = glxinfo.Run()
    return err == nil
}

/* false if a window can't be opened, e.g. over ssh without X forwarding */
func CanOpen() bool {
    if runtime.GOOS == "linux" || runtime.GOOS == "freebsd" {
        if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
            return false
        }
        return hasGlxinfo()
    }
    return true
}
