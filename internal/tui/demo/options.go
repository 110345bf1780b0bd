package demo

import (
	"github.com/alexisbeaulieu97/tuikit/internal/config"
	"github.com/alexisbeaulieu97/tuikit/internal/ui/dropdown"
	"github.com/alexisbeaulieu97/tuikit/internal/ui/geom"
	tuikiterrors "github.com/alexisbeaulieu97/tuikit/pkg/errors"
)

// DropdownOptions converts dropdown settings into controller options.
func DropdownOptions(cfg config.DropdownConfig) ([]dropdown.Option, error) {
	side, ok := geom.ParseSide(cfg.Side)
	if !ok {
		return nil, tuikiterrors.NewValidationError("dropdown.side", "unknown side "+cfg.Side, nil)
	}
	align, ok := geom.ParseAlign(cfg.Align)
	if !ok {
		return nil, tuikiterrors.NewValidationError("dropdown.align", "unknown align "+cfg.Align, nil)
	}

	return []dropdown.Option{
		dropdown.WithSide(side),
		dropdown.WithAlign(align),
		dropdown.WithSideOffset(cfg.SideOffset),
		dropdown.WithPadding(cfg.Padding),
		dropdown.WithTiming(cfg.FrameInterval, cfg.SettleDelay, cfg.ThrottleInterval, cfg.FocusDelay),
		dropdown.WithCloseOnEscape(cfg.CloseOnEscape),
	}, nil
}
