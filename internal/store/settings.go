package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/candeia/chants/internal/core"
)

const settingsColumns = `owner_uid, interval_seconds, font_size, dark_mode, high_contrast, uppercase_display, updated_at`

func scanSettings(row pgx.Row) (core.PrompterSettings, error) {
	var p core.PrompterSettings
	err := row.Scan(&p.OwnerUID, &p.IntervalSeconds, &p.FontSize,
		&p.DarkMode, &p.HighContrast, &p.UppercaseDisplay, &p.UpdatedAt)
	return p, err
}

// GetOrCreateSettings returns the owner's prompter settings, inserting the
// defaults row first if the owner has never configured the prompter. The row
// is keyed by owner identity, so there is at most one per account.
func (o *OwnedStore) GetOrCreateSettings(ctx context.Context) (core.PrompterSettings, error) {
	if err := o.guard(); err != nil {
		return core.PrompterSettings{}, err
	}

	if _, err := o.pool.Exec(ctx,
		`INSERT INTO prompter_settings (owner_uid) VALUES ($1) ON CONFLICT (owner_uid) DO NOTHING`,
		o.owner); err != nil {
		return core.PrompterSettings{}, fmt.Errorf("ensure settings: %w", err)
	}

	p, err := scanSettings(o.pool.QueryRow(ctx,
		`SELECT `+settingsColumns+` FROM prompter_settings WHERE owner_uid = $1`, o.owner))
	if err != nil {
		return core.PrompterSettings{}, fmt.Errorf("get settings: %w", err)
	}
	return p, nil
}

// UpdateSettings applies a partial update; nil fields keep their stored
// value. Settings rows are never deleted, only account cascade removes them.
func (o *OwnedStore) UpdateSettings(ctx context.Context, f core.PrompterFields) (core.PrompterSettings, error) {
	if err := o.guard(); err != nil {
		return core.PrompterSettings{}, err
	}
	if f.IntervalSeconds != nil && *f.IntervalSeconds <= 0 {
		return core.PrompterSettings{}, fmt.Errorf("%w: rotation interval must be positive", core.ErrInvalid)
	}
	if f.FontSize != nil && !f.FontSize.Valid() {
		return core.PrompterSettings{}, fmt.Errorf("%w: unknown font size %q", core.ErrInvalid, string(*f.FontSize))
	}

	// Create-on-demand so a first-time PUT behaves like configure.
	if _, err := o.GetOrCreateSettings(ctx); err != nil {
		return core.PrompterSettings{}, err
	}

	var fontSize *string
	if f.FontSize != nil {
		s := string(*f.FontSize)
		fontSize = &s
	}

	// updated_at is always the server clock; a client-supplied value is
	// ignored by construction since it is not a writable field.
	p, err := scanSettings(o.pool.QueryRow(ctx,
		`UPDATE prompter_settings
		 SET interval_seconds = COALESCE($2, interval_seconds),
		     font_size = COALESCE($3, font_size),
		     dark_mode = COALESCE($4, dark_mode),
		     high_contrast = COALESCE($5, high_contrast),
		     uppercase_display = COALESCE($6, uppercase_display),
		     updated_at = NOW()
		 WHERE owner_uid = $1
		 RETURNING `+settingsColumns,
		o.owner, f.IntervalSeconds, fontSize, f.DarkMode, f.HighContrast, f.UppercaseDisplay))
	if err != nil {
		return core.PrompterSettings{}, fmt.Errorf("update settings: %w", err)
	}
	return p, nil
}
