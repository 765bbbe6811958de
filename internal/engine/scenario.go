// Package engine implements the personality-driven matching and
// scenario core: the scenario tiering policy, the deterministic corpus
// generator, the match scorer and the cohort analytics.  Everything in
// this package is a pure function over in-memory values; no I/O is
// performed and no state is shared between calls, so concurrent
// callers may invoke any of it freely.
package engine

import "fmt"

// Tier bundles the attributes the tiering policy assigns to a scenario
// slot.  The five slots of a route are spread across the day and range
// from a premium safe option down to a cheap charter-like flight with
// heavy injected delay.
//
// Fields:
//  PriceMultiplier – factor applied to the route's base price.
//  DelayMinutes    – simulated delay at decision time.
//  RegretIndex     – predicted regret in [0,1].
//  Note            – advisory note attached to the flight's scenario tag.
type Tier struct {
    PriceMultiplier float64
    DelayMinutes    int
    RegretIndex     float64
    Note            string
}

// TierFor maps a scenario slot index (1..5) to its tier attributes.
// Slot 1 is the premium early-morning option, slots 2 and 3 are the
// standard midday flights, slot 4 is the budget option and slot 5 the
// late-night high-risk charter.  A slot outside 1..5 is a programming
// error and panics.
func TierFor(slot int) Tier {
    switch slot {
    case 1:
        return Tier{
            PriceMultiplier: 1.6,
            DelayMinutes:    0,
            RegretIndex:     0.05,
            Note:            "گزینه ایمن (Safe Bet)؛ ایده‌آل برای افراد با وظیفه‌شناسی بالا.",
        }
    case 2, 3:
        return Tier{
            PriceMultiplier: 1.1,
            DelayMinutes:    10,
            RegretIndex:     0.15,
            Note:            "گزینه متعادل؛ توازن مناسب بین قیمت و کیفیت.",
        }
    case 4:
        return Tier{
            PriceMultiplier: 0.8,
            DelayMinutes:    35,
            RegretIndex:     0.45,
            Note:            "گزینه اقتصادی؛ مناسب برای بودجه‌های محدود اما با ریسک تأخیر متوسط.",
        }
    case 5:
        return Tier{
            PriceMultiplier: 0.6,
            DelayMinutes:    90,
            RegretIndex:     0.85,
            Note:            "ریسک بسیار بالا (High Risk)؛ فقط برای کاربران با گشودگی بسیار بالا پیشنهاد می‌شود.",
        }
    }
    panic(fmt.Sprintf("engine: scenario slot %d outside 1..5", slot))
}
