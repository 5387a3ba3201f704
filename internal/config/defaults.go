package config

const DefaultRules = `📌 LINK DROP RULES

1. Drop your post link when the slot opens. One link per member.
2. Engage with every link in the slot list, top to bottom.
3. Post proof (a screen recording) in the group before the slot closes.
4. No proof means no participation. Repeat offenders are banned.`

const DefaultSlots = `🕒 SLOT TIMINGS (edit texts.slots in config.toml)

First slot  - 07:00 AM to 09:30 AM
Second slot - 01:00 PM to 03:30 PM
Third slot  - 07:00 PM to 09:30 PM`
