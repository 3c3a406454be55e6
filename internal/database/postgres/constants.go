package postgres

// User / economy statements
const (
	SQLEnsureUser = `
		INSERT INTO users (id) VALUES ($1)
		ON CONFLICT (id) DO NOTHING`

	SQLGetBalance = `SELECT coins FROM users WHERE id = $1`

	SQLCreditCoins = `UPDATE users SET coins = coins + $2 WHERE id = $1`

	// Conditional debit: zero rows affected means the balance did not
	// cover the amount (or the user row is missing).
	SQLDebitCoins = `UPDATE users SET coins = coins - $2 WHERE id = $1 AND coins >= $2`
)

// Part stock statements
const (
	SQLUpsertStock = `
		INSERT INTO part_stock (user_id, template_id, part_kind, rarity, amount)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, template_id, part_kind, rarity)
		DO UPDATE SET amount = part_stock.amount + EXCLUDED.amount`

	SQLDecrementStock = `
		UPDATE part_stock SET amount = amount - $5
		WHERE user_id = $1 AND template_id = $2 AND part_kind = $3 AND rarity = $4
		  AND amount >= $5`

	SQLConsumeOnePart = `
		UPDATE part_stock SET amount = amount - 1
		WHERE user_id = $1 AND template_id = $2 AND part_kind = $3 AND rarity = $4
		  AND amount >= 1`

	SQLSnapshotStock = `
		SELECT user_id, template_id, part_kind, rarity, amount
		FROM part_stock
		WHERE user_id = $1 AND amount > 0
		ORDER BY template_id, rarity, part_kind`

	SQLSnapshotStockByTemplate = `
		SELECT user_id, template_id, part_kind, rarity, amount
		FROM part_stock
		WHERE user_id = $1 AND template_id = $2 AND amount > 0
		ORDER BY rarity, part_kind`

	SQLStockedRarities = `
		SELECT DISTINCT rarity FROM part_stock
		WHERE user_id = $1 AND template_id = $2 AND amount > 0`

	SQLRichestStockForUpdate = `
		SELECT user_id, template_id, part_kind, rarity, amount
		FROM part_stock
		WHERE user_id = $1 AND template_id = $2 AND part_kind = $3 AND amount > 0
		ORDER BY amount DESC
		LIMIT 1
		FOR UPDATE`
)

// Draw statements
const (
	SQLLastDrawForUpdate = `SELECT last_draw_at FROM users WHERE id = $1 FOR UPDATE`

	SQLSetLastDraw = `UPDATE users SET last_draw_at = $2 WHERE id = $1`

	SQLInsertDrawLog = `
		INSERT INTO draw_log (user_id, template_id, part_kind, rarity, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
)

// Creature statements
const (
	SQLInsertCreature = `
		INSERT INTO creatures (owner_id, template_id, rarity, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	SQLGetCreature = `
		SELECT id, owner_id, template_id, rarity, role, level, exp
		FROM creatures WHERE id = $1`

	SQLCreaturesByOwner = `
		SELECT id, owner_id, template_id, rarity, role, level, exp
		FROM creatures WHERE owner_id = $1
		ORDER BY level DESC, id`

	SQLCreatureForUpdate = `
		SELECT id, owner_id, template_id, rarity, role, level, exp
		FROM creatures WHERE id = $1
		FOR UPDATE`

	SQLCreatureOwner = `SELECT owner_id FROM creatures WHERE id = $1`

	SQLTransferCreature = `UPDATE creatures SET owner_id = $2 WHERE id = $1`
)

// Listing statements
const (
	SQLHasActiveListing = `SELECT EXISTS (SELECT 1 FROM listings WHERE creature_id = $1)`

	SQLInsertListing = `
		INSERT INTO listings (seller_id, creature_id, price)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	SQLListingForUpdate = `
		SELECT id, seller_id, creature_id, price, created_at
		FROM listings WHERE id = $1
		FOR UPDATE`

	SQLCloseListing = `DELETE FROM listings WHERE id = $1`

	SQLActiveListings = `
		SELECT id, seller_id, creature_id, price, created_at
		FROM listings
		ORDER BY created_at, id`
)

// Catalog statements
const (
	SQLListTemplates = `
		SELECT id, name, rarity, role, base_value
		FROM templates ORDER BY id`

	SQLGetTemplate = `
		SELECT id, name, rarity, role, base_value
		FROM templates WHERE id = $1`
)

// Squad statements
const (
	SQLGetSquad = `
		SELECT slot_1, slot_2, slot_3, slot_4, slot_5, slot_6
		FROM squads WHERE user_id = $1`

	// SQLSetSlotFmt is completed with a validated slot index in [1,6];
	// the index never comes from user input unchecked.
	SQLSetSlotFmt = `
		INSERT INTO squads (user_id, slot_%d) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET slot_%d = EXCLUDED.slot_%d`
)

// Error message constants
const (
	ErrMsgBeginTxFailed = "failed to begin transaction"
)
