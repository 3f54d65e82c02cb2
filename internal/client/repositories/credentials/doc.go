// Package credentials persists the credential pair (access and refresh
// token) between CLI runs.
//
// Values are opaque strings keyed by name (common.AccessTokenKey,
// common.RefreshTokenKey). The SQLite implementation works over a
// dbx.DBTX, so several keys can be written in one transaction:
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    repo := credentials.NewSQLiteRepository(tx)
//	    if err := repo.Set(ctx, common.AccessTokenKey, access); err != nil {
//	        return err
//	    }
//	    return repo.Set(ctx, common.RefreshTokenKey, refresh)
//	})
package credentials
