package corpus

import "github.com/nyayalegal/nyaya/internal/models"

// DefaultChunks is the compiled-in legal knowledge base: curated passages on
// the RTI Act 2005, the Protection of Women from Domestic Violence Act 2005,
// and divorce law under the Hindu Marriage Act 1955 and allied statutes.
// Each passage is short enough to embed whole and carries its topic and a
// human-readable section label for provenance headers.
var DefaultChunks = []models.KnowledgeChunk{
	// RTI Act, 2005
	{
		ID:      "rti_scope_definition",
		Topic:   models.TopicRTI,
		Section: "Scope and Definitions",
		Text: "RTI Act 2005 — Scope and Who Can File: " +
			"Section 2(f) defines 'Information' as any material in any form — records, documents, memos, " +
			"emails, opinions, advices, press releases, circulars, orders, logbooks, contracts, reports, " +
			"samples, models, and electronic data. " +
			"Section 2(h) defines 'Public Authority' as any body established by the Constitution, Parliament, " +
			"State Legislature, or Government notification — includes all central/state departments, PSUs, " +
			"government-aided institutions, banks, courts (except Supreme Court registry). " +
			"Section 2(j): Every citizen of India has the right to inspect records, obtain certified copies, " +
			"and take certified samples of material held by public authorities. " +
			"RTI does NOT apply to intelligence agencies listed in the Second Schedule (e.g., RAW, IB) " +
			"except on matters of corruption or human rights violations (Section 24).",
	},
	{
		ID:      "rti_filing_procedure",
		Topic:   models.TopicRTI,
		Section: "Filing Procedure",
		Text: "RTI Act 2005 — How to File an RTI Application (Section 6): " +
			"Write a plain application in English, Hindi, or any official language of the area. " +
			"Address it to the Public Information Officer (PIO) of the relevant department. " +
			"NO reasons or justification required — Section 6(1) explicitly states this. " +
			"Pay fee of Rs. 10 by Indian Postal Order (IPO), Demand Draft, court fee stamp, or cash. " +
			"BPL (Below Poverty Line) card holders are FULLY EXEMPT from all fees — attach BPL card copy. " +
			"File ONLINE at rtionline.gov.in for all central government departments. " +
			"File by speed post / registered post or in person at the department office. " +
			"Section 6(3): If the PIO of the wrong department receives your application, they MUST transfer " +
			"it to the correct public authority within 5 days and inform you.",
	},
	{
		ID:      "rti_timelines_deadlines",
		Topic:   models.TopicRTI,
		Section: "Timelines and Deadlines",
		Text: "RTI Act 2005 — Timelines and Deadlines: " +
			"Section 7(1): The PIO must provide information within 30 days of receiving the application. " +
			"Section 7(1) Proviso: If information concerns the life or liberty of a person, the PIO must respond " +
			"within 48 HOURS. Courts have interpreted 'life and liberty' broadly to include ration cards, " +
			"MGNREGA wages, pension disbursement, and police safety. " +
			"Section 7(2): If information pertains to a third party, the PIO gets 40 days to respond. " +
			"Section 7(5): If the PIO misses the 30-day deadline, information must be provided FREE OF COST. " +
			"Section 7(6): Partial disclosure — PIO can supply part of the information and deny the rest with reasons. " +
			"Deemed Refusal: If the PIO does not respond within 30 days, it is treated as a refusal and the " +
			"applicant can immediately file a First Appeal.",
	},
	{
		ID:      "rti_fees_charges",
		Topic:   models.TopicRTI,
		Section: "Fees and Charges",
		Text: "RTI Act 2005 — Detailed Fee Structure: " +
			"Application fee: Rs. 10 (IPO, DD, court fee stamp, or cash). " +
			"BPL applicants: ZERO fee for application AND information — attach BPL card copy. " +
			"Information fee: Rs. 2 per page (A4 or A3 size), Rs. 5 per page (larger), " +
			"Rs. 50 per diskette, actual cost for samples/models. " +
			"Inspection of records: Rs. 5 per hour (first hour free). " +
			"First Appeal: FREE — no fee. Second Appeal to CIC/SIC: FREE — no fee. " +
			"If the PIO misses the 30-day deadline under Section 7(5): ALL information provided free of cost. " +
			"State governments set their own fee schedules — some states charge Rs. 10, others differ.",
	},
	{
		ID:      "rti_appeals_process",
		Topic:   models.TopicRTI,
		Section: "Appeals — First and Second",
		Text: "RTI Act 2005 — Appeals Process: " +
			"Section 19(1) — First Appeal: File with the First Appellate Authority (an officer senior to the PIO " +
			"in the same department) within 30 days of receiving an unsatisfactory reply, or 30+30=60 days from " +
			"filing if no reply. First Appeal is FREE. The First Appellate Authority must decide within 30 days " +
			"(extendable to 45). " +
			"Section 19(3) — Second Appeal: If the First Appeal fails or gets no response, file with the Central " +
			"Information Commission (CIC) for central government, or the State Information Commission (SIC) for " +
			"state government, within 90 days of the First Appellate Authority's order. FREE. " +
			"Section 19(8): CIC/SIC can require the public authority to disclose information, appoint a new PIO, " +
			"publish certain information, or compensate the complainant. " +
			"Section 20 — Penalty: CIC/SIC can impose a penalty of Rs. 250 per day of delay on the PIO, " +
			"up to a maximum of Rs. 25,000. Disciplinary action can also be recommended.",
	},
	{
		ID:      "rti_exemptions",
		Topic:   models.TopicRTI,
		Section: "Exemptions from Disclosure",
		Text: "RTI Act 2005 — What Information Can Be Withheld (Section 8): " +
			"Section 8(1)(a): National security, sovereignty, strategic/scientific interest. " +
			"Section 8(1)(b): Information that courts have forbidden from publication. " +
			"Section 8(1)(c): Parliamentary privilege. " +
			"Section 8(1)(d): Commercial confidence, trade secrets, intellectual property. " +
			"Section 8(1)(e): Information held in fiduciary relationship (e.g., advice given to ministers). " +
			"Section 8(1)(g): Information that would endanger the life of a person. " +
			"Section 8(1)(h): Information that would impede an ongoing investigation or prosecution. " +
			"Section 8(1)(j): Personal information with no public interest — frequently misused by public " +
			"authorities; the CIC has held that salary, assets, and conduct of public servants IS disclosable. " +
			"Section 8(2): Even exempt information must be disclosed if there is overriding public interest. " +
			"Third-Party Information (Section 11): The PIO must give 5 days notice to the third party before disclosing.",
	},

	// Protection of Women from Domestic Violence Act, 2005
	{
		ID:      "dv_definition_types",
		Topic:   models.TopicDomesticViolence,
		Section: "Definition and Types of Abuse",
		Text: "Protection of Women from Domestic Violence Act 2005 (PWDVA) — What Counts as Domestic Violence: " +
			"Section 3 defines domestic violence to include: " +
			"Physical Abuse: Any act causing bodily pain, harm, or danger to life — hitting, slapping, kicking, " +
			"punching, pushing, burning, biting, hair-pulling, use of weapons. " +
			"Sexual Abuse: Any conduct of a sexual nature that humiliates, degrades, or violates dignity. " +
			"Verbal and Emotional Abuse: Insults, ridicule, humiliation, name-calling, threats of physical harm, " +
			"threats to take away children, threats of divorce, controlling behaviour, isolating from family. " +
			"Economic Abuse (Section 3(iv)): Depriving the woman of financial resources she is entitled to, " +
			"refusing to pay rent, forcing her to leave the shared household, disposing of stridhan/property. " +
			"Dowry Demands (Section 3(iv)(c)): Repeated demands for dowry or valuable property constitute " +
			"domestic violence. This is SEPARATE from the Dowry Prohibition Act 1961.",
	},
	{
		ID:      "dv_who_can_file_officials",
		Topic:   models.TopicDomesticViolence,
		Section: "Who Can File and Key Officials",
		Text: "PWDVA 2005 — Who Can File and Key Officials: " +
			"Section 2(a) — Aggrieved Person: Any woman who is or has been in a domestic relationship " +
			"and alleges domestic violence. Includes wife, live-in partner, sister, mother, daughter. " +
			"Section 2(q) — Respondent: Male adult member of the household or relatives of the husband/partner. " +
			"Who can approach: The woman herself, any person on her behalf, a child of the aggrieved woman, " +
			"a Protection Officer, or a police officer. " +
			"Protection Officer (Section 9): Appointed by the State Government. Service is FREE. " +
			"Duties: Prepare the DIR, assist in court, arrange shelter/medical aid, ensure a safety plan. " +
			"Service Provider (Section 10): Registered NGOs can receive complaints, provide shelter, legal aid. " +
			"Magistrate (Section 12): Any Judicial/Metropolitan Magistrate has jurisdiction. " +
			"The aggrieved woman can file directly with the Magistrate, bypassing the Protection Officer.",
	},
	{
		ID:      "dv_dir_filing",
		Topic:   models.TopicDomesticViolence,
		Section: "Domestic Incident Report Filing",
		Text: "PWDVA 2005 — Filing the Domestic Incident Report (DIR) and Approaching the Magistrate: " +
			"Step 1: Contact the Protection Officer at the district court or Police Station or DLSA " +
			"(District Legal Services Authority) — FREE. " +
			"Step 2: The Protection Officer is LEGALLY OBLIGATED under Section 9(b) to prepare the DIR in Form I. " +
			"The DIR can also be prepared by a Service Provider under Section 10(2)(c). " +
			"Step 3: The Protection Officer files the DIR with the Magistrate under Section 12. " +
			"You can also directly file a petition/application under Section 12(1) to the Magistrate yourself. " +
			"Section 12(4): The Magistrate MUST fix the first hearing date within 3 DAYS of receiving the application. " +
			"Section 12(5): All proceedings must be disposed of within 60 DAYS. " +
			"All proceedings are held in camera (private) to protect dignity — Section 16. " +
			"EMERGENCY: Call Women Helpline 181 (24x7) or Police 100. Police MUST assist under Section 5.",
	},
	{
		ID:      "dv_court_orders",
		Topic:   models.TopicDomesticViolence,
		Section: "Court Orders Available",
		Text: "PWDVA 2005 — Orders the Magistrate Can Pass: " +
			"Protection Order (Section 18): Prohibits the respondent from committing DV, entering the victim's " +
			"workplace or school, contacting or communicating with the victim, alienating her assets or stridhan. " +
			"Violation of a Protection Order is a CRIMINAL OFFENCE — Section 31 — imprisonment up to 1 year " +
			"or fine up to Rs. 20,000 or both. " +
			"Residence Order (Section 19): The respondent must vacate the shared household. The victim CANNOT be " +
			"dispossessed from the shared household even if she has no ownership. The respondent must provide " +
			"alternative accommodation of the same standard. " +
			"Monetary Relief (Section 20): Covers loss of earnings, medical expenses, maintenance for herself " +
			"and children, and the cost of rented accommodation. Paid by the respondent. " +
			"Custody Order (Section 21): Interim custody of children to the aggrieved person. " +
			"Compensation and Damages (Section 22): Lump-sum compensation for physical/mental injuries, " +
			"emotional distress, and mental torture caused by domestic violence.",
	},
	{
		ID:      "dv_criminal_remedies",
		Topic:   models.TopicDomesticViolence,
		Section: "Criminal Law Remedies",
		Text: "Parallel Criminal Remedies for Domestic Violence Victims: " +
			"Section 498A IPC (now Section 85 BNS 2023): Cruelty by husband or relatives. " +
			"Cognizable (police can arrest without warrant), non-bailable. Imprisonment up to 3 years + fine. " +
			"Section 304B IPC (now Section 80 BNS 2023): Dowry death — woman dies within 7 years of marriage " +
			"in suspicious circumstances. Minimum 7 years imprisonment, maximum life. Presumption against husband. " +
			"Section 323/325 IPC (now Sections 115/117 BNS): Simple/grievous hurt — up to 1 to 7 years. " +
			"Section 354 IPC (now Section 74 BNS): Assault or criminal force to outrage modesty. " +
			"Section 506 IPC (now Section 351 BNS): Criminal intimidation — threats. " +
			"Dowry Prohibition Act 1961: Section 4 — demanding dowry punishable by minimum 6 months imprisonment " +
			"and fine of Rs. 5,000 minimum. " +
			"HELPLINES: National Women Helpline: 181 (free, 24x7) | Police: 100 | " +
			"National Commission for Women: 011-26942369 | District Legal Services Authority (DLSA): Free legal aid.",
	},

	// Hindu Marriage Act, 1955 — Divorce
	{
		ID:      "divorce_eligibility_types",
		Topic:   models.TopicDivorce,
		Section: "Eligibility and Types of Divorce",
		Text: "Hindu Marriage Act 1955 — Divorce: Types and Eligibility: " +
			"Mutual Consent Divorce — Section 13B: Both spouses agree. Must have lived separately for AT LEAST " +
			"1 YEAR. Both must appear before the Family Court. Faster, less adversarial. " +
			"Contested Divorce — Section 13: Grounds include cruelty (Section 13(1)(ia)), adultery (Section 13(1)(i)), " +
			"desertion for 2+ years (Section 13(1)(ib)), conversion to another religion, mental disorder, " +
			"venereal disease, renunciation of the world, presumption of death. " +
			"Special Marriage Act 1954 — Section 28: Mutual consent divorce for inter-religious marriages. " +
			"Similar to 13B but requires 1-year separation. " +
			"Muslim Personal Law: Talaq-e-Ahsan (most approved form — 3 monthly periods), Khula (wife-initiated). " +
			"Triple Talaq is ABOLISHED — Muslim Women (Protection of Rights on Marriage) Act 2019. " +
			"Christian Divorce: Indian Divorce Act 1869 — Section 10A: Mutual consent, 2-year separation required.",
	},
	{
		ID:      "divorce_procedure_steps",
		Topic:   models.TopicDivorce,
		Section: "Step-by-Step Mutual Consent Procedure",
		Text: "Section 13B, Hindu Marriage Act 1955 — Mutual Consent Divorce Procedure: " +
			"Pre-Requisites: Both must agree. Must have lived separately for 1 year or more IMMEDIATELY before filing. " +
			"Step 1 — Settlement: Before filing, BOTH parties must settle in a Memorandum of Understanding (MOU): " +
			"alimony amount and payment schedule, child custody and visitation rights, return of stridhan, " +
			"division of property. Courts insist on complete settlement to avoid future disputes. " +
			"Step 2 — Engage Advocate: Draft a joint petition signed by BOTH spouses. " +
			"Step 3 — File in Family Court: Jurisdiction = where the marriage was solemnized OR where the " +
			"respondent resides OR where the parties last lived together. Court fee: approximately Rs. 200-500. " +
			"Step 4 — First Motion (Section 13B(1)): Both appear before the judge on the same day. Statements " +
			"recorded on oath. First Motion granted. A 6-month cooling-off period begins. " +
			"Step 5 — Second Motion (Section 13B(2)): Must be filed within 18 months of the First Motion. " +
			"Both appear again to confirm consent. Decree of Divorce passed immediately. " +
			"Cooling-Off Waiver: Supreme Court in Amardeep Singh v. Harveen Kaur (2017) — courts CAN waive " +
			"the 6-month period if the marriage is irretrievably broken, all issues are settled, and waiting " +
			"would prolong suffering.",
	},
	{
		ID:      "divorce_alimony_maintenance",
		Topic:   models.TopicDivorce,
		Section: "Alimony and Maintenance",
		Text: "Alimony and Maintenance Laws in India — Divorce Context: " +
			"Section 24, Hindu Marriage Act 1955: Maintenance pendente lite — maintenance DURING the divorce " +
			"proceedings for whichever spouse earns less. Either husband or wife can claim. Court passes the " +
			"order within 60 days. " +
			"Section 25, HMA 1955: Permanent alimony — lump sum or monthly amount awarded AFTER the divorce " +
			"decree. Court considers: income and property of both parties, conduct of the parties, other " +
			"circumstances. Either spouse can claim. Can be revisited if circumstances change. " +
			"Section 125, CrPC (now Section 144 BNSS 2023): A Magistrate can order monthly maintenance for " +
			"wife, children, and parents. Can be obtained quickly even before the Family Court divorce. " +
			"Women can file under BOTH Section 125 CrPC AND the Hindu Marriage Act simultaneously. " +
			"Stridhan: All jewellery, gifts, and property given to the wife at or before/after marriage from " +
			"any source is her absolute property — Supreme Court in Pratibha Rani v. Suraj Kumar (1985). " +
			"The husband has NO right to stridhan even during marriage.",
	},
	{
		ID:      "divorce_child_custody",
		Topic:   models.TopicDivorce,
		Section: "Child Custody",
		Text: "Child Custody Laws in India — Divorce Context: " +
			"Section 26, Hindu Marriage Act 1955: The court can pass interim or permanent custody orders at any " +
			"stage, even before the divorce decree. Best interest of the child is the paramount consideration. " +
			"Guardians and Wards Act 1890: The applicable law for custody disputes. Section 13 — welfare of the " +
			"minor comes first. " +
			"General Practice: The mother usually gets custody of children below 5 years (tender years doctrine). " +
			"For children above 5, the court considers: the child's own preference (if old enough), stability of " +
			"home, financial capacity of each parent, relationship with siblings. " +
			"The father has the right to visitation even when the mother has custody. " +
			"NRI Custody: If one parent takes a child abroad without consent, the other parent can file a Habeas " +
			"Corpus petition in the High Court. India is not a signatory to the Hague Convention. " +
			"Interim Custody: Can be obtained urgently from the Family Court within days of filing. " +
			"Section 21, PWDVA 2005: Even in domestic violence cases, the Magistrate can grant temporary custody.",
	},
	{
		ID:      "divorce_nri_special",
		Topic:   models.TopicDivorce,
		Section: "NRI Divorce and Other Special Situations",
		Text: "Special Divorce Situations — NRI, Muslim, Christian: " +
			"NRI Divorce (Hindu Marriage Act): Section 19 — the petition can be filed in India even if one party " +
			"is abroad. The spouse abroad can appoint a Power of Attorney holder to appear in court during " +
			"proceedings, but MUST appear in person for the Final Hearing. " +
			"Foreign Divorce Decrees: Not automatically valid in India. Must be enforced through Indian courts. " +
			"Muslim Divorce: Triple talaq ABOLISHED under the Muslim Women (Protection of Rights on Marriage) " +
			"Act 2019 — instant triple talaq is a CRIMINAL OFFENCE with up to 3 years imprisonment. " +
			"Dissolution of Muslim Marriages Act 1939: The wife can seek divorce on grounds of the husband's " +
			"whereabouts being unknown, failure to maintain, imprisonment, cruelty, impotency, mental disorder, " +
			"leprosy. " +
			"Khula: Wife-initiated divorce — she typically returns the mehr (dower) received at nikah. " +
			"Christian Divorce: Indian Divorce Act 1869 as amended — Section 10A mutual consent requires " +
			"2-year separation.",
	},
}
