// Package theme handles toast appearance. Themes are TOML files mapping
// toast kinds to accent colors, icons and border styles, loaded from
// ~/.config/toastui/themes/ with embedded fallbacks and hot-reload support.
package theme
